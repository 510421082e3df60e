package models

// Application - отклик рабочего на вакансию.
// Составной уникальный индекс гарантирует не более одной записи
// на пару (worker_id, job_id) даже при гонке двух запросов.
type Application struct {
	BaseModel
	WorkerID string            `gorm:"not null;uniqueIndex:idx_applications_worker_job" json:"worker_id"`
	JobID    string            `gorm:"not null;uniqueIndex:idx_applications_worker_job" json:"job_id"`
	Status   ApplicationStatus `gorm:"type:varchar(50);default:'applied'" json:"status"`

	Worker *WorkerProfile `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
	Job    *Job           `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
