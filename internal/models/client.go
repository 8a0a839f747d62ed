package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:100;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Address   string `gorm:"size:255" json:"address"`

	// Animals are exclusively owned: deleting the client deletes them.
	Animals []*Animal `gorm:"foreignKey:OwnerID" json:"animals,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddAnimal keeps both sides of the owner relation consistent.
func (c *Client) AddAnimal(a *Animal) {
	for i := range c.Animals {
		if c.Animals[i] == a {
			return
		}
	}
	c.Animals = append(c.Animals, a)
	a.OwnerID = c.ID
	a.Owner = c
}

// RemoveAnimal detaches the animal and clears its owner reference,
// but only if it still points back to this client.
func (c *Client) RemoveAnimal(a *Animal) {
	for i := range c.Animals {
		if c.Animals[i] == a {
			c.Animals = append(c.Animals[:i], c.Animals[i+1:]...)
			if a.Owner == c {
				a.Owner = nil
				a.OwnerID = 0
			}
			return
		}
	}
}
