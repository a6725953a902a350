package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// CreateServiceForm is bound from multipart/form-data; the image is a
// separate optional file part.
type CreateServiceForm struct {
	Name        string  `form:"name" binding:"required"`
	Category    string  `form:"category" binding:"required"`
	Price       float64 `form:"price"`
	Duration    int     `form:"duration" binding:"required"`
	Description string  `form:"description"`
}

type CreateStylistForm struct {
	Name        string   `form:"name" binding:"required"`
	Email       string   `form:"email" binding:"required,email"`
	Phone       string   `form:"phone"`
	RoleTitle   string   `form:"roleTitle" binding:"required"`
	Specialties []string `form:"specialties"`
}

type AuditLogDTO struct {
	ID        uint   `json:"id"`
	UserID    string `json:"userId,omitempty"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entityId,omitempty"`
	Metadata  string `json:"metadata,omitempty"`
	CreatedAt string `json:"createdAt"`
}
