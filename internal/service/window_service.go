package service

import (
	"time"

	"github.com/mealbox/storefront-backend/internal/catalog"
	"github.com/mealbox/storefront-backend/internal/models"
)

type WindowService struct {
	catalog *catalog.Catalog
}

func NewWindowService(c *catalog.Catalog) *WindowService {
	return &WindowService{catalog: c}
}

// AvailableWindows lists the windows that can still be booked for date.
// For any day other than now's calendar day every window is returned; for
// today only windows that have not started yet.
func (s *WindowService) AvailableWindows(date, now time.Time) []models.DeliveryWindow {
	all := s.catalog.Windows()
	if !sameDay(date.In(now.Location()), now) {
		out := make([]models.DeliveryWindow, len(all))
		copy(out, all)
		return out
	}

	hour := now.Hour()
	out := make([]models.DeliveryWindow, 0, len(all))
	for _, w := range all {
		if w.StartHour > hour {
			out = append(out, w)
		}
	}
	return out
}

func (s *WindowService) WindowContains(hour int, windowID string) bool {
	w, ok := s.catalog.GetWindowByID(windowID)
	if !ok {
		return false
	}
	return w.Contains(hour)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
