package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому хранится *gorm.DB (пул или транзакция)
	DBContextKey = contextKey("db")

	// PrincipalKey - ключ, по которому AuthMiddleware кладет *auth.Principal
	PrincipalKey = contextKey("principal")
)
