package http

import (
	"github.com/hr-autoflow-api/internal/application/session"
	"github.com/hr-autoflow-api/internal/infrastructure/directory"
	jwtinfra "github.com/hr-autoflow-api/internal/infrastructure/jwt"
	"github.com/hr-autoflow-api/internal/infrastructure/memory"
	"github.com/hr-autoflow-api/internal/infrastructure/mockdata"
)

// Deps holds the shared single-instance stores the router wires into
// services. Both stores are constructed once at process start and passed by
// reference; nothing here is looked up ambiently.
type Deps struct {
	Directory         *directory.Directory
	DataSource        *mockdata.Source
	NotificationStore *memory.NotificationStore
	SessionService    session.Service
	JWTProvider       *jwtinfra.Provider
}
