package domain

import (
	"errors"
	"estateportal/src/domain/entities"
)

var (
	ErrNotFound           = errors.New("entity not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("no user logged in")
	ErrValidation         = errors.New("validation failed")

	ErrUnavailableServer = errors.New("Oops, something unexpected happened. Please try again later.")
)

// ############################################################
// ####################### PROPERTIES #########################
// ############################################################

// PropertyInput carrega tudo que o admin informa ao cadastrar um imóvel (sem id/createdAt).
type PropertyInput struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Price       float64                 `json:"price"`
	Type        string                  `json:"type"`
	Status      entities.PropertyStatus `json:"status"`
	Bedrooms    int                     `json:"bedrooms"`
	Bathrooms   float64                 `json:"bathrooms"`
	Garage      int                     `json:"garage"`
	Size        int                     `json:"size"`
	YearBuilt   int                     `json:"yearBuilt"`
	Address     string                  `json:"address"`
	Location    entities.Location       `json:"location"`
	Features    []string                `json:"features"`
	Images      []string                `json:"images"`
	VideoURL    string                  `json:"videoUrl,omitempty"`
	Highlighted bool                    `json:"highlighted"`
	Agent       entities.Agent          `json:"agent"`
}

// PropertyPatch is a shallow partial update: nil fields are left untouched.
type PropertyPatch struct {
	Title       *string                  `json:"title,omitempty"`
	Description *string                  `json:"description,omitempty"`
	Price       *float64                 `json:"price,omitempty"`
	Type        *string                  `json:"type,omitempty"`
	Status      *entities.PropertyStatus `json:"status,omitempty"`
	Bedrooms    *int                     `json:"bedrooms,omitempty"`
	Bathrooms   *float64                 `json:"bathrooms,omitempty"`
	Garage      *int                     `json:"garage,omitempty"`
	Size        *int                     `json:"size,omitempty"`
	YearBuilt   *int                     `json:"yearBuilt,omitempty"`
	Address     *string                  `json:"address,omitempty"`
	Location    *entities.Location       `json:"location,omitempty"`
	Features    []string                 `json:"features,omitempty"`
	Images      []string                 `json:"images,omitempty"`
	VideoURL    *string                  `json:"videoUrl,omitempty"`
	Highlighted *bool                    `json:"highlighted,omitempty"`
	Agent       *entities.Agent          `json:"agent,omitempty"`
}

// PropertyFilter is the criteria object of the listings page. The zero value matches everything.
type PropertyFilter struct {
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Bathrooms *float64
	Status    entities.PropertyStatus
	Query     string
}

// ############################################################
// ########################## USERS ###########################
// ############################################################

type UserInput struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Role     entities.Role `json:"role"`
}

type UserPatch struct {
	Name     *string        `json:"name,omitempty"`
	Email    *string        `json:"email,omitempty"`
	Password *string        `json:"password,omitempty"`
	Role     *entities.Role `json:"role,omitempty"`
}

// ############################################################
// ######################## MESSAGES ##########################
// ############################################################

type MessageInput struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	Subject    string  `json:"subject"`
	Message    string  `json:"message"`
	PropertyID *string `json:"propertyId,omitempty"`
}

// ############################################################
// ######################## DASHBOARD #########################
// ############################################################

type DashboardStats struct {
	TotalProperties int `json:"totalProperties"`
	ActiveListings  int `json:"activeListings"`
	TotalUsers      int `json:"totalUsers"`
	TotalMessages   int `json:"totalMessages"`
	UnreadMessages  int `json:"unreadMessages"`
}
