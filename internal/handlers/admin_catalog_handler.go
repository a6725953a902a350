package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/httperr"
	"github.com/harramos25/GlamBook/internal/httpresp"
	"github.com/harramos25/GlamBook/internal/middleware"
	"github.com/harramos25/GlamBook/internal/models"
	uccatalog "github.com/harramos25/GlamBook/internal/usecase/catalog"
	"github.com/harramos25/GlamBook/internal/validators"
)

type CatalogManager interface {
	CreateService(ctx context.Context, in uccatalog.CreateServiceInput) (*models.Service, error)
	CreateStylist(ctx context.Context, in uccatalog.CreateStylistInput) (*models.Stylist, error)
}

type AdminCatalogHandler struct {
	catalog       CatalogManager
	emailDomainOK func(string) bool
}

func NewAdminCatalogHandler(catalog CatalogManager) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		catalog:       catalog,
		emailDomainOK: validators.IsEmailDomainValid,
	}
}

// --------- Handlers ---------

// POST /api/admin/services (multipart, optional "image" file)
func (h *AdminCatalogHandler) CreateService(c *gin.Context) {
	var form dto.CreateServiceForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	image, closeImage, err := optionalImage(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", err.Error())
		return
	}
	defer closeImage()

	s, err := h.catalog.CreateService(c.Request.Context(), uccatalog.CreateServiceInput{
		ActorID:     c.GetString(middleware.ContextUserID),
		Name:        form.Name,
		Category:    form.Category,
		Price:       form.Price,
		Duration:    form.Duration,
		Description: form.Description,
		Image:       image,
	})
	if err != nil {
		writeAdminError(c, err, "failed_to_create_service")
		return
	}

	httpresp.Created(c, s)
}

// POST /api/admin/stylists (multipart, optional "image" file)
func (h *AdminCatalogHandler) CreateStylist(c *gin.Context) {
	var form dto.CreateStylistForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))
	if !h.emailDomainOK(email) {
		httperr.BadRequest(c, "invalid_email_domain", "email domain does not accept mail")
		return
	}

	image, closeImage, err := optionalImage(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", err.Error())
		return
	}
	defer closeImage()

	st, err := h.catalog.CreateStylist(c.Request.Context(), uccatalog.CreateStylistInput{
		ActorID:     c.GetString(middleware.ContextUserID),
		Name:        form.Name,
		Email:       email,
		Phone:       form.Phone,
		RoleTitle:   form.RoleTitle,
		Specialties: specialtiesFromForm(form.Specialties),
		Image:       image,
	})
	if err != nil {
		writeAdminError(c, err, "failed_to_create_stylist")
		return
	}

	httpresp.Created(c, st)
}

// --------- Helpers ---------

// optionalImage opens the "image" part when present. The returned closer is
// always safe to call.
func optionalImage(c *gin.Context) (io.Reader, func(), error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { _ = f.Close() }, nil
}

// specialtiesFromForm accepts repeated fields or one comma-joined value.
func specialtiesFromForm(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}
