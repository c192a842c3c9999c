package types

import "math"

type PhotoDTO struct {
	ID     int    `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

// MemberDTO is the read-side projection of a user for listing and
// detail responses. PhotoURL carries the main photo, Age is derived
// from the date of birth.
type MemberDTO struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	KnownAs      string     `json:"known_as,omitempty"`
	Age          int        `json:"age"`
	Gender       string     `json:"gender"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	City         string     `json:"city,omitempty"`
	Country      string     `json:"country,omitempty"`
	Introduction string     `json:"introduction,omitempty"`
	LookingFor   string     `json:"looking_for,omitempty"`
	Interests    string     `json:"interests,omitempty"`
	Photos       []PhotoDTO `json:"photos"`
}

// MemberUpdateRequest is a partial profile update; nil fields are left
// untouched on the user.
type MemberUpdateRequest struct {
	KnownAs      *string `json:"known_as,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
	LookingFor   *string `json:"looking_for,omitempty"`
	Interests    *string `json:"interests,omitempty"`
	City         *string `json:"city,omitempty"`
	Country      *string `json:"country,omitempty"`
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// UserParams filters the member listing. CurrentUser is filled in from
// the authenticated identity, never from the query string.
type UserParams struct {
	Gender      string
	MinAge      int
	MaxAge      int
	OrderBy     string
	PageNumber  int
	PageSize    int
	CurrentUser string
}

// Normalize applies paging and age-range defaults in place.
func (p *UserParams) Normalize() {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.MinAge < 18 {
		p.MinAge = 18
	}
	if p.MaxAge < p.MinAge {
		p.MaxAge = 150
	}
}

// PagedList is one page of a larger collection plus the counts a
// client needs to compute further pages.
type PagedList[T any] struct {
	Items       []T
	CurrentPage int
	PageSize    int
	TotalCount  int
	TotalPages  int
}

func NewPagedList[T any](items []T, totalCount int64, pageNumber, pageSize int) *PagedList[T] {
	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}
	// current page never points past the end
	if pageNumber > totalPages {
		pageNumber = totalPages
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	return &PagedList[T]{
		Items:       items,
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		TotalCount:  int(totalCount),
		TotalPages:  totalPages,
	}
}
