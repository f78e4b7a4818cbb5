package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/config"
	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/models"
	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/service/users"
)

type userService interface {
	Verify(ctx context.Context, name, password string) (bool, error)
	Register(ctx context.Context, name, password string) error
}

type commentService interface {
	List(ctx context.Context) ([]models.Comment, error)
	Add(ctx context.Context, author, text string) error
}

type sessionCodec interface {
	Encode(s models.Session) (string, error)
	Decode(raw string) models.Session
}

type Handler struct {
	UserService    userService
	CommentService commentService
	Codec          sessionCodec

	cookie   config.SessionConfig
	validate *validator.Validate
}

func NewHandler(us userService, cs commentService, codec sessionCodec, cookie config.SessionConfig) *Handler {
	return &Handler{
		UserService:    us,
		CommentService: cs,
		Codec:          codec,
		cookie:         cookie,
		validate:       validator.New(),
	}
}

func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/", h.Home)
	router.Get("/login", h.LoginForm)
	router.Post("/login", h.Login)
	router.Get("/register", h.RegisterForm)
	router.Post("/register", h.Register)
	router.Post("/logout", h.Logout)

	router.Route("/comments", func(r chi.Router) {
		r.Get("/", h.Comments)
		r.Get("/addcomment", h.AddCommentForm)
		r.Post("/addcomment", h.AddComment)
	})

	return router
}

// session resolves the caller's view-model from the cookie. No cookie, or a
// cookie that does not decode, means the default guest session.
func (h *Handler) session(r *http.Request) models.Session {
	cookie, err := r.Cookie(h.cookie.CookieName)
	if err != nil {
		return models.DefaultSession()
	}
	return h.Codec.Decode(cookie.Value)
}

func (h *Handler) setSession(w http.ResponseWriter, s models.Session) error {
	token, err := h.Codec.Encode(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

type homeView struct {
	User models.Session
}

type commentRow struct {
	Author   string
	Text     string
	PostedAt string
}

type commentsView struct {
	User     models.Session
	Comments []commentRow
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", homeView{User: h.session(r)})
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", nil)
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", nil)
}

func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.List(r.Context())
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	rows := lo.Map(comments, func(c models.Comment, _ int) commentRow {
		return commentRow{
			Author:   c.Author,
			Text:     c.Text,
			PostedAt: c.CreatedAt.Format("Jan 2, 2006, 03:04 PM"),
		}
	})
	h.render(w, "comments.html", commentsView{User: h.session(r), Comments: rows})
}

func (h *Handler) AddCommentForm(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if !sess.LoggedIn {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	h.render(w, "addcomment.html", homeView{User: sess})
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if !sess.LoggedIn {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	_ = r.ParseForm()
	// The comment author is the session name, taken at face value.
	if err := h.CommentService.Add(r.Context(), sess.Name, r.PostFormValue("text")); err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/comments", http.StatusSeeOther)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	input := models.LoginRequest{
		Name:     r.PostFormValue("name"),
		Password: r.PostFormValue("password"),
	}

	var sess models.Session
	if err := h.validate.Struct(input); err != nil {
		sess = models.Session{Message: "Please enter both username and password!"}
	} else {
		ok, err := h.UserService.Verify(r.Context(), input.Name, input.Password)
		if err != nil {
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		if ok {
			sess = models.Session{Name: input.Name, Message: "Successfully logged in!", LoggedIn: true}
		} else {
			sess = models.Session{Name: input.Name, Message: "Invalid username or password!"}
		}
	}

	if err := h.setSession(w, sess); err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	input := models.RegisterRequest{
		Name:     r.PostFormValue("name"),
		Password: r.PostFormValue("password"),
	}

	sess := models.Session{Name: input.Name}
	if err := h.validate.Struct(input); err != nil {
		sess.Message = "Please enter both username and password!"
	} else {
		switch err := h.UserService.Register(r.Context(), input.Name, input.Password); {
		case errors.Is(err, users.ErrAlreadyExists):
			sess.Message = "Username already exists!"
		case err != nil:
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		default:
			sess.Message = "Registration successful! You are now logged in."
			sess.LoggedIn = true
		}
	}

	if err := h.setSession(w, sess); err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
