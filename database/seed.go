package database

import (
	"fmt"
	"strings"

	"bluehire_backend/internal/auth"
	"bluehire_backend/internal/logger"
	"bluehire_backend/internal/models"

	"gorm.io/gorm"
)

var seedCities = []string{
	"Bengaluru",
	"Delhi",
	"Mysuru",
	"Mumbai",
	"Chennai",
	"Hyderabad",
	"Pune",
	"Kolkata",
	"Jaipur",
	"Ahmedabad",
}

var seedSkillSets = []string{
	"Electrician, Wiring, Maintenance",
	"Plumber, Pipe Fitting, Sanitation",
	"Driver, Heavy Vehicle, License",
	"Carpenter, Furniture Making, Fitting",
	"Welder, Fabrication, Cutting",
	"Mason, Construction, Brick Work",
	"Security Guard, Night Shift, Patrol",
	"Housekeeping, Cleaning, Maintenance",
	"Delivery Boy, Two Wheeler, Navigation",
	"AC Technician, Cooling Systems, Repair",
}

// SeedDemoData наполняет пустую базу демо-данными для разработки:
// два работодателя, пять рабочих и пять вакансий. Если вакансии
// уже есть, ничего не делает.
func SeedDemoData(db *gorm.DB) error {
	var jobCount int64
	if err := db.Model(&models.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount > 0 {
		logger.Info("Database already has data, skipping demo seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		hash, err := auth.HashPassword("password123")
		if err != nil {
			return err
		}

		metro, err := seedEmployer(tx, hash, "Metro Constructions", "metro@bluehire.test",
			"9000000001", "Infra and building works across India.", "Bengaluru")
		if err != nil {
			return err
		}
		logistics, err := seedEmployer(tx, hash, "City Logistics", "logistics@bluehire.test",
			"9000000002", "Last mile delivery services.", "Delhi")
		if err != nil {
			return err
		}

		for i := 0; i < 5; i++ {
			phone := fmt.Sprintf("910000000%d", i+1)
			worker := &models.User{
				Name:         fmt.Sprintf("Worker %d", i+1),
				Email:        fmt.Sprintf("worker%d@bluehire.test", i+1),
				Phone:        &phone,
				PasswordHash: hash,
				Role:         models.UserRoleWorker,
			}
			if err := tx.Create(worker).Error; err != nil {
				return err
			}

			profile := &models.WorkerProfile{
				UserID:            worker.ID,
				Skills:            seedSkillSets[i],
				ExperienceYears:   2,
				PreferredLocation: seedCities[i],
			}
			if err := tx.Create(profile).Error; err != nil {
				return err
			}
		}

		sampleJobs := []struct {
			title    string
			employer *models.EmployerProfile
			skills   string
			city     string
		}{
			{"Electrician - Residential Projects", metro, seedSkillSets[0], "Bengaluru"},
			{"Plumber - Apartment Maintenance", metro, seedSkillSets[1], "Mysuru"},
			{"Heavy Vehicle Driver", logistics, seedSkillSets[2], "Delhi"},
			{"Delivery Boy - E-commerce", logistics, seedSkillSets[8], "Mumbai"},
			{"Security Guard - Night Shift", logistics, seedSkillSets[6], "Hyderabad"},
		}

		salaryMin, salaryMax := 15000, 25000
		for _, sj := range sampleJobs {
			job := &models.Job{
				EmployerID:     sj.employer.ID,
				Title:          sj.title,
				Description:    "Good salary, overtime benefits, and PF/ESI as per company norms.",
				Category:       strings.TrimSpace(strings.Split(sj.skills, ",")[0]),
				Location:       sj.city,
				SkillsRequired: sj.skills,
				SalaryMin:      &salaryMin,
				SalaryMax:      &salaryMax,
			}
			if err := tx.Create(job).Error; err != nil {
				return err
			}
		}

		logger.Info("Demo data inserted",
			"employers", 2, "workers", 5, "jobs", len(sampleJobs))
		return nil
	})
}

func seedEmployer(tx *gorm.DB, passwordHash, name, emailAddr, phone, description, location string) (*models.EmployerProfile, error) {
	user := &models.User{
		Name:         name,
		Email:        emailAddr,
		Phone:        &phone,
		PasswordHash: passwordHash,
		Role:         models.UserRoleEmployer,
	}
	if err := tx.Create(user).Error; err != nil {
		return nil, err
	}

	profile := &models.EmployerProfile{
		UserID:             user.ID,
		CompanyName:        name,
		CompanyDescription: description,
		Location:           location,
	}
	if err := tx.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
