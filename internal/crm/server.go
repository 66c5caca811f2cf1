package crm

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/akimovv/SessionBooker/internal/clock"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// NotifyPayload is the booking notification wire format the CRM accepts.
type NotifyPayload struct {
	BookingID int64 `json:"booking_id"`
	User      struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	Event struct {
		ID        int64  `json:"id"`
		Title     string `json:"title"`
		StartDate string `json:"start_date"`
	} `json:"event"`
	FacilitatorID int64 `json:"facilitator_id"`
}

// Server is the CRM receiver side: it authenticates, validates and logs
// incoming booking notifications and exposes the accumulated log.
type Server struct {
	store     *Store
	authToken string
	clock     clock.Clock
	logger    logger.Logger
}

func NewServer(store *Store, authToken string, clk clock.Clock, logger logger.Logger) *Server {
	return &Server{
		store:     store,
		authToken: authToken,
		clock:     clk,
		logger:    logger,
	}
}

func (s *Server) Router(mode string) *ginext.Engine {
	r := ginext.New(mode)

	r.POST("/notify", s.notify)
	r.GET("/notifications", s.listNotifications)
	r.GET("/health", s.health)

	return r
}

func (s *Server) notify(c *ginext.Context) {
	auth := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token != s.authToken {
		c.JSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "cannot read body"})
		return
	}

	var payload NotifyPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid JSON"})
		return
	}

	if msg := validate(payload); msg != "" {
		c.JSON(http.StatusBadRequest, ginext.H{"error": msg})
		return
	}

	rec, err := s.store.Append(raw, s.clock.Now())
	if err != nil {
		s.logger.Error("failed to store notification",
			logger.Int64("booking_id", payload.BookingID),
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
		return
	}

	s.logger.Info("notification received",
		logger.Int64("record_id", rec.ID),
		logger.Int64("booking_id", payload.BookingID),
		logger.Int64("facilitator_id", payload.FacilitatorID),
	)

	c.JSON(http.StatusOK, ginext.H{
		"status":     "received",
		"booking_id": payload.BookingID,
		"timestamp":  rec.ReceivedAt.UTC().Format(time.RFC3339),
	})
}

func validate(p NotifyPayload) string {
	switch {
	case p.BookingID <= 0:
		return "booking_id must be a positive integer"
	case p.User.ID <= 0:
		return "user.id must be a positive integer"
	case strings.TrimSpace(p.User.Name) == "":
		return "user.name is required"
	case strings.TrimSpace(p.User.Email) == "":
		return "user.email is required"
	case p.Event.ID <= 0:
		return "event.id must be a positive integer"
	case strings.TrimSpace(p.Event.Title) == "":
		return "event.title is required"
	case strings.TrimSpace(p.Event.StartDate) == "":
		return "event.start_date is required"
	case p.FacilitatorID <= 0:
		return "facilitator_id must be a positive integer"
	}

	if !isISODate(p.Event.StartDate) {
		return "event.start_date must be an ISO-8601 datetime"
	}

	return ""
}

// isISODate accepts RFC3339 and the offset-less isoformat some senders emit.
func isISODate(s string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04:05.999999999"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func (s *Server) listNotifications(c *ginext.Context) {
	records, count := s.store.List()

	c.JSON(http.StatusOK, ginext.H{
		"notifications": records,
		"count":         count,
	})
}

func (s *Server) health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}
