package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/user-api/internal/handler/user"
	middlewarePkg "github.com/zhouzirui/user-api/internal/middleware"
	userModel "github.com/zhouzirui/user-api/internal/model/user"
	"github.com/zhouzirui/user-api/pkg/utils"
)

// NewRouter wires HTTP routes to the user store. repoURL is linked from the home page.
func NewRouter(users userModel.Store, repoURL string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	home := homePage(repoURL)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondHTML(w, http.StatusOK, home)
	})

	user.New(users).RegisterRoutes(r)

	return r
}

func homePage(repoURL string) string {
	return fmt.Sprintf(`Hello world! Check the repo here: <a href="%[1]s" target="_blank">%[1]s</a>`, repoURL)
}
