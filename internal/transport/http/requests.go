package http

import "github.com/sameer-dev-stack/Royal-Class-Events/models"

// Fields whose zero value is legal, including empty strings, are pointers so
// that "missing" and "zero" stay distinguishable for the required rule.

type demandRequest struct {
	Category   *string `json:"category" binding:"required"`
	Location   *string `json:"location" binding:"required"`
	StartDate  *string `json:"start_date" binding:"required"`
	Capacity   int     `json:"capacity" binding:"required,gt=0"`
	TicketType *string `json:"ticket_type"`
}

func (r demandRequest) toEvent() models.EventAttributes {
	return models.EventAttributes{
		Category:   *r.Category,
		Location:   *r.Location,
		StartDate:  *r.StartDate,
		Capacity:   r.Capacity,
		TicketType: ticketTypeOr(r.TicketType, models.TicketFree),
	}
}

type revenueRequest struct {
	DemandScore *float64 `json:"demand_score" binding:"required,gte=0,lte=100"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	TicketPrice *float64 `json:"ticket_price" binding:"required,gte=0"`
	TicketType  *string  `json:"ticket_type"`
}

type priceSuggestionRequest struct {
	Category    *string  `json:"category" binding:"required"`
	Location    *string  `json:"location" binding:"required"`
	DemandScore *float64 `json:"demand_score" binding:"required,gte=0,lte=100"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
}

type dynamicPriceRequest struct {
	BasePrice      float64 `json:"base_price" binding:"required,gt=0"`
	MinPrice       float64 `json:"min_price" binding:"required,gt=0"`
	MaxPrice       float64 `json:"max_price" binding:"required,gt=0"`
	Registrations  *int    `json:"registrations" binding:"required,gte=0"`
	Capacity       int     `json:"capacity" binding:"required,gt=0"`
	DaysUntilEvent *int    `json:"days_until_event" binding:"required,gte=0"`
}

func (r dynamicPriceRequest) toInput() models.DynamicPriceInput {
	return models.DynamicPriceInput{
		BasePrice:      r.BasePrice,
		MinPrice:       r.MinPrice,
		MaxPrice:       r.MaxPrice,
		Registrations:  *r.Registrations,
		Capacity:       r.Capacity,
		DaysUntilEvent: *r.DaysUntilEvent,
	}
}

func ticketTypeOr(v *string, def models.TicketType) models.TicketType {
	if v == nil {
		return def
	}
	return models.TicketType(*v)
}
