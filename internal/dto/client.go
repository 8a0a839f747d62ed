package dto

import "github.com/VetCareServices/vetclinic-api/internal/models"

// ClientRead is the listing projection.
type ClientRead struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// ClientDetail extends the read set with the owned animals, one level deep.
type ClientDetail struct {
	ClientRead
	Animals []AnimalSummary `json:"animals"`
}

// ClientSummary is the depth-limited form used inside other payloads.
type ClientSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewClientRead(c *models.Client) ClientRead {
	return ClientRead{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}

func NewClientDetail(c *models.Client) ClientDetail {
	d := ClientDetail{
		ClientRead: NewClientRead(c),
		Animals:    make([]AnimalSummary, 0, len(c.Animals)),
	}
	for _, a := range c.Animals {
		d.Animals = append(d.Animals, NewAnimalSummary(a))
	}
	return d
}

func NewClientSummary(c *models.Client) *ClientSummary {
	if c == nil {
		return nil
	}
	return &ClientSummary{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}
