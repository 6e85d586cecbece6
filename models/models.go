package models

// User is a platform account. UserID, Username and Email are each unique
// across the Users collection.
type User struct {
	UserID      string   `json:"UserID" bson:"UserID"`
	Username    string   `json:"Username" bson:"Username"`
	FirstName   string   `json:"FirstName" bson:"FirstName"`
	LastName    string   `json:"LastName" bson:"LastName"`
	Email       string   `json:"Email" bson:"Email"`
	AccountType string   `json:"AccountType" bson:"AccountType"`
	PaymentType string   `json:"PaymentType" bson:"PaymentType"`
	MyEvents    []string `json:"MyEvents" bson:"MyEvents"`
	MyTickets   []string `json:"MyTickets" bson:"MyTickets"`
	MyGenres    []string `json:"MyGenres" bson:"MyGenres"`
	InCart      []string `json:"InCart" bson:"InCart"`
	IsAdmin     bool     `json:"IsAdmin" bson:"IsAdmin"`
}

// Credential pairs 1:1 with a User and holds the bcrypt hash of its password.
type Credential struct {
	UserID     string `json:"UserID" bson:"UserID"`
	Username   string `json:"Username" bson:"Username"`
	Credential string `json:"credential" bson:"credential"`
}

// Event IDs have the literal form "A<digits>". EventName is unique.
type Event struct {
	EventID          string   `json:"EventID" bson:"EventID"`
	EventName        string   `json:"EventName" bson:"EventName"`
	EventDescription string   `json:"EventDescription" bson:"EventDescription"`
	Venue            string   `json:"Venue" bson:"Venue"`
	Artists          []string `json:"Artists" bson:"Artists"`
	EventDate        string   `json:"EventDate" bson:"EventDate"`
	EventTime        string   `json:"EventTime" bson:"EventTime"`
	EventEndTime     string   `json:"EventEndTime" bson:"EventEndTime"`
	EventType        string   `json:"EventType" bson:"EventType"`
	Price            float64  `json:"Price" bson:"Price"`
	GenreID          string   `json:"GenreID" bson:"GenreID"`
	Image            string   `json:"Image" bson:"Image"`
	Genres           []string `json:"Genres" bson:"Genres"`
	IsHero           bool     `json:"IsHero" bson:"IsHero"`
	HostName         string   `json:"HostName" bson:"HostName"`
	SpecialNote      string   `json:"specialNote" bson:"specialNote"`
	HeadlineArtist   string   `json:"headlineArtist" bson:"headlineArtist"`
}

type Ticket struct {
	TicketNumber  string `json:"TicketNumber" bson:"TicketNumber"`
	EventID       string `json:"EventID" bson:"EventID"`
	UserID        string `json:"UserID" bson:"UserID"`
	PaymentMethod string `json:"PaymentMethod" bson:"PaymentMethod"`
	PurchaseDate  string `json:"PurchaseDate" bson:"PurchaseDate"`
}

type ContactForm struct {
	FormID      string `json:"FormID" bson:"FormID"`
	Name        string `json:"Name" bson:"Name"`
	PhoneNumber string `json:"PhoneNumber" bson:"PhoneNumber"`
	Email       string `json:"Email" bson:"Email"`
	Subject     string `json:"Subject" bson:"Subject"`
	Message     string `json:"Message" bson:"Message"`
}

// LoginForm is the JSON body of /api/user/authenticate.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
