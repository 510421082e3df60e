package contextkeys

// Ключи, под которыми middleware аутентификации кладет данные сессии
// в gin.Context. Кастомные константы - чтобы избежать коллизий строк.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)
