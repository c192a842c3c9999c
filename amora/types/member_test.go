package types

import (
	"testing"
	"time"

	"amora/amora/sources/psql/models"
)

func TestNewPagedListTotals(t *testing.T) {
	cases := []struct {
		count      int64
		size       int
		totalPages int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, c := range cases {
		page := NewPagedList([]int{}, c.count, 1, c.size)
		if page.TotalPages != c.totalPages {
			t.Errorf("count=%d size=%d: expected %d pages, got %d",
				c.count, c.size, c.totalPages, page.TotalPages)
		}
	}
}

func TestNewPagedListClampsCurrentPage(t *testing.T) {
	page := NewPagedList([]int{}, 5, 9, 2)
	if page.TotalPages != 3 || page.CurrentPage != 3 {
		t.Errorf("page past the end must clamp to the last page, got %d/%d",
			page.CurrentPage, page.TotalPages)
	}

	page = NewPagedList([]int{}, 0, 7, 10)
	if page.CurrentPage != 1 || page.TotalPages != 1 {
		t.Errorf("empty collection must report page 1 of 1, got %d/%d",
			page.CurrentPage, page.TotalPages)
	}
}

func TestUserParamsNormalize(t *testing.T) {
	p := UserParams{}
	p.Normalize()
	if p.PageNumber != 1 || p.PageSize != DefaultPageSize {
		t.Errorf("paging defaults wrong: %+v", p)
	}
	if p.MinAge != 18 || p.MaxAge != 150 {
		t.Errorf("age defaults wrong: %+v", p)
	}

	p = UserParams{PageSize: 500, MinAge: 30, MaxAge: 20}
	p.Normalize()
	if p.PageSize != MaxPageSize {
		t.Errorf("page size must be capped, got %d", p.PageSize)
	}
	if p.MaxAge != 150 {
		t.Errorf("inverted age range should widen max, got %d", p.MaxAge)
	}
}

func TestApplyMemberUpdateLeavesAbsentFields(t *testing.T) {
	user := &models.User{City: "Lisbon", Introduction: "old"}
	intro := "new"
	ApplyMemberUpdate(user, MemberUpdateRequest{Introduction: &intro})
	if user.Introduction != "new" {
		t.Errorf("introduction not applied")
	}
	if user.City != "Lisbon" {
		t.Errorf("city must stay untouched")
	}
}

func TestNewMemberDTOCarriesMainPhoto(t *testing.T) {
	user := &models.User{
		Username:    "bob",
		Gender:      "male",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Photos: []models.Photo{
			{ID: 1, URL: "u1"},
			{ID: 2, URL: "u2", IsMain: true},
		},
	}
	dto := NewMemberDTO(user)
	if dto.PhotoURL != "u2" {
		t.Errorf("photo_url should be the main photo, got %q", dto.PhotoURL)
	}
	if len(dto.Photos) != 2 {
		t.Errorf("expected both photos projected")
	}
	if dto.Age < 30 {
		t.Errorf("age not derived from date of birth: %d", dto.Age)
	}
}
