package types

import "amora/amora/sources/psql/models"

func NewPhotoDTO(p *models.Photo) PhotoDTO {
	return PhotoDTO{
		ID:     p.ID,
		URL:    p.URL,
		IsMain: p.IsMain,
	}
}

func NewMemberDTO(u *models.User) *MemberDTO {
	dto := &MemberDTO{
		ID:           u.ID,
		Username:     u.Username,
		KnownAs:      u.KnownAs,
		Age:          u.Age(),
		Gender:       u.Gender,
		City:         u.City,
		Country:      u.Country,
		Introduction: u.Introduction,
		LookingFor:   u.LookingFor,
		Interests:    u.Interests,
		Photos:       make([]PhotoDTO, 0, len(u.Photos)),
	}
	for i := range u.Photos {
		dto.Photos = append(dto.Photos, NewPhotoDTO(&u.Photos[i]))
	}
	if main := u.MainPhoto(); main != nil {
		dto.PhotoURL = main.URL
	}
	return dto
}

// ApplyMemberUpdate overwrites user fields present in the request and
// leaves the rest alone.
func ApplyMemberUpdate(u *models.User, req MemberUpdateRequest) {
	if req.KnownAs != nil {
		u.KnownAs = *req.KnownAs
	}
	if req.Introduction != nil {
		u.Introduction = *req.Introduction
	}
	if req.LookingFor != nil {
		u.LookingFor = *req.LookingFor
	}
	if req.Interests != nil {
		u.Interests = *req.Interests
	}
	if req.City != nil {
		u.City = *req.City
	}
	if req.Country != nil {
		u.Country = *req.Country
	}
}
