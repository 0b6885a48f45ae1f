package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const maxJSONBodyBytes = 1 << 20

type Handler struct {
	leagueService    *usecase.LeagueService
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	matchService     *usecase.MatchService
	standingService  *usecase.StandingService
	topScorerService *usecase.TopScorerService
	cupService       *usecase.CupService
	liveService      *usecase.LiveService
	liveFeed         *usecase.LiveFeed
	pageService      *usecase.PageService
	uploadService    *usecase.UploadService
	logger           *logging.Logger
	validator        *validator.Validate
	now              func() time.Time
}

func NewHandler(
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	standingService *usecase.StandingService,
	topScorerService *usecase.TopScorerService,
	cupService *usecase.CupService,
	liveService *usecase.LiveService,
	liveFeed *usecase.LiveFeed,
	pageService *usecase.PageService,
	uploadService *usecase.UploadService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:    leagueService,
		teamService:      teamService,
		playerService:    playerService,
		matchService:     matchService,
		standingService:  standingService,
		topScorerService: topScorerService,
		cupService:       cupService,
		liveService:      liveService,
		liveFeed:         liveFeed,
		pageService:      pageService,
		uploadService:    uploadService,
		logger:           logger,
		validator:        newValidator(),
		now:              time.Now,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire name so clients can match errors to inputs.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	_, span := startSpan(ctx, "httpapi.Handler.decodeJSON")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	out := &usecase.ValidationError{Fields: make([]usecase.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, usecase.FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url", "http_url":
		return "must be a valid url"
	case "uuid", "uuid4":
		return "must be a uuid"
	case "iso3166_1_alpha2":
		return "must be a two-letter country code"
	case "nefield":
		return "must differ from " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// langFromRequest picks the display language from ?lang=, then Accept-Language.
func langFromRequest(r *http.Request) string {
	lang := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang")))
	if lang == "" {
		lang = strings.ToLower(strings.TrimSpace(r.Header.Get("Accept-Language")))
	}
	if strings.HasPrefix(lang, "am") {
		return "am"
	}
	return "en"
}

func pathRef(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}
