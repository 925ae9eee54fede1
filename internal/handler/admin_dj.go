package handler

import (
    "context"
    "errors"
    "net/http"
    "regexp"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
    "github.com/iliyamo/gig-booking-dashboard/internal/queue"
    "github.com/iliyamo/gig-booking-dashboard/internal/repository"
    "github.com/iliyamo/gig-booking-dashboard/internal/utils"
)

var ssnPattern = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)

type djReq struct {
    Email            string                  `json:"email"`
    Password         string                  `json:"password"`
    FullName         string                  `json:"full_name"`
    DOB              string                  `json:"dob"`
    SSN              string                  `json:"ssn"`
    Phone            string                  `json:"phone"`
    Address          model.Address           `json:"address"`
    EmploymentStatus string                  `json:"employment_status"`
    EmergencyContact *model.EmergencyContact `json:"emergency_contact"`
}

func (r *djReq) validate() string {
    r.Email = strings.ToLower(strings.TrimSpace(r.Email))
    r.FullName = strings.TrimSpace(r.FullName)
    r.SSN = strings.TrimSpace(r.SSN)
    r.Phone = strings.TrimSpace(r.Phone)
    switch {
    case r.Email == "" || r.FullName == "" || r.Phone == "":
        return "email, full_name and phone are required"
    case len(r.Password) < utils.MinPasswordLen:
        return "password too short"
    case !ssnPattern.MatchString(r.SSN):
        return "invalid ssn"
    case !model.EmploymentStatus(r.EmploymentStatus).Valid():
        return "employment_status must be employee, contractor or 1099"
    }
    if _, err := time.Parse("2006-01-02", r.DOB); err != nil {
        return "dob must be YYYY-MM-DD"
    }
    return ""
}

// CreateDJ handles POST /v1/admin/djs.  The login, profile, DJ record and
// dj role are created together; the SSN is sealed before storage.
func (h *AdminHandler) CreateDJ(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req djReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if msg := req.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    sealed, err := utils.Seal(&h.Cfg.SSNKey, req.SSN)
    if err != nil {
        h.Log.Error("seal ssn", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create dj failed"})
    }
    phone := req.Phone

    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    dj, err := h.DJs.CreateWithAccount(ctx, repository.NewDJ{
        Account:          repository.NewAccount{Email: req.Email, Password: req.Password, FullName: req.FullName, Phone: &phone},
        DOB:              req.DOB,
        SSNSealed:        sealed,
        Address:          req.Address,
        EmploymentStatus: model.EmploymentStatus(req.EmploymentStatus),
        EmergencyContact: req.EmergencyContact,
    }, h.Cfg.BcryptCost)
    if err != nil {
        if errors.Is(err, repository.ErrEmailExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        }
        h.Log.Error("create dj", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create dj failed"})
    }
    h.changed(queue.ResourceDJs, queue.ActionCreate, dj.ID, uid)
    return c.JSON(http.StatusCreated, dj)
}

// ListDJs handles GET /v1/admin/djs.
func (h *AdminHandler) ListDJs(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    list, err := h.DJs.List(ctx)
    if err != nil {
        h.Log.Error("list djs", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list djs failed"})
    }
    return c.JSON(http.StatusOK, list)
}

// SetUserRole handles PUT /v1/admin/users/:id/role.
func (h *AdminHandler) SetUserRole(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req struct {
        Role string `json:"role"`
    }
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    role := model.AppRole(strings.ToLower(strings.TrimSpace(req.Role)))
    if !role.Valid() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be admin or dj"})
    }
    target := c.Param("id")
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    if err := h.Users.SetRole(ctx, target, role); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        h.Log.Error("set role", zap.String("user_id", target), zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "set role failed"})
    }
    h.changed(queue.ResourceUserRoles, queue.ActionUpdate, target, uid)
    return c.JSON(http.StatusOK, echo.Map{"user_id": target, "role": role})
}
