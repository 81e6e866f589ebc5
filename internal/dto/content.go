package dto

import (
	"time"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
	"github.com/rence141/Organizational-Management-Sys-sub000/internal/utils"
)

// AnnouncementDTO represents an announcement in API responses
type AnnouncementDTO struct {
	ID        uint64          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Author    *UserSummaryDTO `json:"author,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// AnnouncementListResponse is a paginated announcement feed
type AnnouncementListResponse struct {
	Announcements []AnnouncementDTO        `json:"announcements"`
	Pagination    utils.PaginationResponse `json:"pagination"`
}

// EventDTO represents an event in API responses
type EventDTO struct {
	ID          uint64          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartsAt    time.Time       `json:"starts_at"`
	Creator     *UserSummaryDTO `json:"creator,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EventListResponse is a paginated event list
type EventListResponse struct {
	Events     []EventDTO               `json:"events"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToAnnouncementDTO converts an Announcement model to AnnouncementDTO
func ToAnnouncementDTO(a models.Announcement) AnnouncementDTO {
	dto := AnnouncementDTO{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}

	if a.Author.ID != 0 {
		author := ToUserSummaryDTO(a.Author)
		dto.Author = &author
	}

	return dto
}

// ToAnnouncementListResponse converts announcements to a paginated response
func ToAnnouncementListResponse(announcements []models.Announcement, params utils.PaginationParams, total int64) AnnouncementListResponse {
	items := make([]AnnouncementDTO, len(announcements))
	for i, a := range announcements {
		items[i] = ToAnnouncementDTO(a)
	}

	return AnnouncementListResponse{
		Announcements: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}

// ToEventDTO converts an Event model to EventDTO
func ToEventDTO(e models.Event) EventDTO {
	dto := EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt,
		CreatedAt:   e.CreatedAt,
	}

	if e.Creator.ID != 0 {
		creator := ToUserSummaryDTO(e.Creator)
		dto.Creator = &creator
	}

	return dto
}

// ToEventListResponse converts events to a paginated response
func ToEventListResponse(events []models.Event, params utils.PaginationParams, total int64) EventListResponse {
	items := make([]EventDTO, len(events))
	for i, e := range events {
		items[i] = ToEventDTO(e)
	}

	return EventListResponse{
		Events: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
