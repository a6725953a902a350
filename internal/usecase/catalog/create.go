package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harramos25/GlamBook/internal/audit"
	domain "github.com/harramos25/GlamBook/internal/domain/catalog"
	"github.com/harramos25/GlamBook/internal/httperr"
	"github.com/harramos25/GlamBook/internal/logger"
	"github.com/harramos25/GlamBook/internal/media"
	"github.com/harramos25/GlamBook/internal/models"
)

// ImageSaver stores an uploaded picture and returns its public URL.
// DeleteImage undoes a save whose record was never written.
type ImageSaver interface {
	SaveImage(ctx context.Context, kind string, r io.Reader) (string, error)
	DeleteImage(ctx context.Context, url string) error
}

// ======================================================
// INPUT
// ======================================================

type CreateServiceInput struct {
	ActorID string

	Name        string
	Category    string
	Price       float64
	Duration    int
	Description string

	Image io.Reader // optional
}

type CreateStylistInput struct {
	ActorID string

	Name        string
	Email       string
	Phone       string
	RoleTitle   string
	Specialties []string

	Image io.Reader // optional
}

// ======================================================
// USE CASE
// ======================================================

type ManageCatalog struct {
	repo   domain.Repository
	images ImageSaver
	audit  *audit.Dispatcher
}

// NewManageCatalog accepts a nil images saver; uploads are then rejected.
func NewManageCatalog(
	repo domain.Repository,
	images ImageSaver,
	audit *audit.Dispatcher,
) *ManageCatalog {
	return &ManageCatalog{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *ManageCatalog) CreateService(
	ctx context.Context,
	in CreateServiceInput,
) (*models.Service, error) {

	s := &models.Service{
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Duration:    in.Duration,
		Description: in.Description,
	}
	if err := domain.ValidateService(s); err != nil {
		return nil, err
	}

	img, err := uc.saveImage(ctx, "services", in.Image)
	if err != nil {
		return nil, err
	}
	s.Image = img

	if err := uc.repo.CreateService(ctx, s); err != nil {
		uc.discardImage(ctx, img)
		return nil, fmt.Errorf("create service: %w", err)
	}

	uc.record(in.ActorID, audit.ActionServiceCreated, "service", s.ID, map[string]any{
		"name":  s.Name,
		"price": s.Price,
	})
	return s, nil
}

func (uc *ManageCatalog) CreateStylist(
	ctx context.Context,
	in CreateStylistInput,
) (*models.Stylist, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_name")
	}

	img, err := uc.saveImage(ctx, "stylists", in.Image)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Name:  name,
		Role:  models.RoleStylist,
	}
	if in.Phone != "" {
		phone := in.Phone
		user.Phone = &phone
	}

	st := &models.Stylist{
		Name:        name,
		RoleTitle:   strings.TrimSpace(in.RoleTitle),
		Image:       img,
		Specialties: domain.JoinSpecialties(in.Specialties),
	}

	if err := uc.repo.CreateStylist(ctx, user, st); err != nil {
		uc.discardImage(ctx, img)
		return nil, err
	}

	uc.record(in.ActorID, audit.ActionStylistCreated, "stylist", st.ID, map[string]any{
		"name":  st.Name,
		"email": user.Email,
	})
	return st, nil
}

func (uc *ManageCatalog) saveImage(ctx context.Context, kind string, r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	if uc.images == nil {
		return "", httperr.ErrBusiness("image_upload_disabled")
	}

	url, err := uc.images.SaveImage(ctx, kind, r)
	switch {
	case errors.Is(err, media.ErrTooLarge):
		return "", httperr.ErrBusiness("image_too_large")
	case errors.Is(err, media.ErrInvalidImage):
		return "", httperr.ErrBusiness("invalid_image")
	case err != nil:
		return "", fmt.Errorf("save %s image: %w", kind, err)
	}
	return url, nil
}

func (uc *ManageCatalog) discardImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := uc.images.DeleteImage(ctx, url); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("url", url).Msg("orphaned catalog image")
	}
}

func (uc *ManageCatalog) record(actorID, action, entity, entityID string, meta map[string]any) {
	if uc.audit == nil {
		return
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.StrPtr(actorID),
		Action:   action,
		Entity:   entity,
		EntityID: audit.StrPtr(entityID),
		Metadata: meta,
	})
}
