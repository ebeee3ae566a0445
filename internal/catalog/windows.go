package catalog

import "github.com/mealbox/storefront-backend/internal/models"

var deliveryWindows = []models.DeliveryWindow{
	{ID: "morning", Name: "Morning", StartHour: 10, EndHour: 12, Label: "10:00 AM - 12:00 PM"},
	{ID: "midday", Name: "Midday", StartHour: 12, EndHour: 14, Label: "12:00 PM - 2:00 PM"},
	{ID: "afternoon", Name: "Afternoon", StartHour: 14, EndHour: 17, Label: "2:00 PM - 5:00 PM"},
	{ID: "evening", Name: "Evening", StartHour: 17, EndHour: 20, Label: "5:00 PM - 8:00 PM"},
}
