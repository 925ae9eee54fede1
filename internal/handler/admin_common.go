package handler

import (
    "time"

    "go.uber.org/zap"

    "github.com/iliyamo/gig-booking-dashboard/internal/config"
    "github.com/iliyamo/gig-booking-dashboard/internal/queue"
    "github.com/iliyamo/gig-booking-dashboard/internal/repository"
)

// AdminHandler bundles the repositories behind the admin screens.
type AdminHandler struct {
    Cfg         config.Config
    Customers   *repository.CustomerRepo
    Venues      *repository.VenueRepo
    Gigs        *repository.GigRepo
    Assignments *repository.AssignmentRepo
    DJs         *repository.DJRepo
    Users       *repository.UserRepo
    Changes     ChangeNotifier
    Log         *zap.Logger
}

// AdminDeps groups the constructor arguments of NewAdminHandler.
type AdminDeps struct {
    Customers   *repository.CustomerRepo
    Venues      *repository.VenueRepo
    Gigs        *repository.GigRepo
    Assignments *repository.AssignmentRepo
    DJs         *repository.DJRepo
    Users       *repository.UserRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any dependency is nil.
func NewAdminHandler(cfg config.Config, deps AdminDeps, changes ChangeNotifier, log *zap.Logger) *AdminHandler {
    if deps.Customers == nil || deps.Venues == nil || deps.Gigs == nil || deps.Assignments == nil ||
        deps.DJs == nil || deps.Users == nil || changes == nil || log == nil {
        panic("nil dependency passed to NewAdminHandler")
    }
    return &AdminHandler{
        Cfg:         cfg,
        Customers:   deps.Customers,
        Venues:      deps.Venues,
        Gigs:        deps.Gigs,
        Assignments: deps.Assignments,
        DJs:         deps.DJs,
        Users:       deps.Users,
        Changes:     changes,
        Log:         log,
    }
}

// changed reports a committed write.
func (h *AdminHandler) changed(resource, action, recordID, actorID string) {
    h.Changes.Notify(queue.DataChangedEvent{
        Resource:  resource,
        Action:    action,
        RecordID:  recordID,
        ActorID:   actorID,
        ChangedAt: time.Now().UTC(),
    })
}
