package entities

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // farmer, distributor, consumer, retailer, regulator
}
