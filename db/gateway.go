package db

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
)

// Users

// FetchUser looks a user up by UserID, or by Username when byID is false.
func (s *Store) FetchUser(ctx context.Context, prop string, byID bool) bson.M {
	query := bson.M{"UserID": prop}
	if !byID {
		query = bson.M{"Username": prop}
	}
	return s.findOne(ctx, s.Users, query)
}

func (s *Store) FetchUserByEmail(ctx context.Context, email string) bson.M {
	return s.findOne(ctx, s.Users, bson.M{"Email": email})
}

func (s *Store) FetchUsers(ctx context.Context) []bson.M {
	return s.findMany(ctx, s.Users, bson.M{})
}

func (s *Store) CreateUser(ctx context.Context, user interface{}) bool {
	log.Println("Creating a new user document")
	return s.insertOne(ctx, s.Users, user)
}

func (s *Store) UpdateUser(ctx context.Context, criteria bson.M, user interface{}) bson.M {
	return s.updateOne(ctx, s.Users, criteria, user)
}

func (s *Store) DeleteUser(ctx context.Context, criteria bson.M) bson.M {
	return s.deleteOne(ctx, s.Users, criteria)
}

// Credentials

func (s *Store) FetchCredential(ctx context.Context, username string) bson.M {
	log.Printf("Fetching credential for: %s", username)
	return s.findOne(ctx, s.Credentials, bson.M{"Username": username})
}

func (s *Store) AddCredential(ctx context.Context, credential interface{}) bool {
	log.Println("Adding credentials for user")
	ok := s.insertOne(ctx, s.Credentials, credential)
	if ok {
		log.Println("Credential added")
	}
	return ok
}

func (s *Store) DeleteCredential(ctx context.Context, criteria bson.M) bson.M {
	return s.deleteOne(ctx, s.Credentials, criteria)
}

// Events

// FetchEvent looks an event up by EventID, or by EventName when byID is false.
func (s *Store) FetchEvent(ctx context.Context, prop string, byID bool) bson.M {
	query := bson.M{"EventID": prop}
	if !byID {
		query = bson.M{"EventName": prop}
	}
	return s.findOne(ctx, s.Events, query)
}

func (s *Store) FetchEvents(ctx context.Context) []bson.M {
	return s.findMany(ctx, s.Events, bson.M{})
}

func (s *Store) CreateEvent(ctx context.Context, event interface{}) bool {
	return s.insertOne(ctx, s.Events, event)
}

func (s *Store) UpdateEvent(ctx context.Context, criteria bson.M, event interface{}) bson.M {
	return s.updateOne(ctx, s.Events, criteria, event)
}

func (s *Store) DeleteEvent(ctx context.Context, criteria bson.M) bson.M {
	return s.deleteOne(ctx, s.Events, criteria)
}

// Contact forms

func (s *Store) FetchContactForm(ctx context.Context, formID string) bson.M {
	return s.findOne(ctx, s.ContactForms, bson.M{"FormID": formID})
}

func (s *Store) FetchContactForms(ctx context.Context) []bson.M {
	return s.findMany(ctx, s.ContactForms, bson.M{})
}

func (s *Store) CreateContactForm(ctx context.Context, form interface{}) bool {
	return s.insertOne(ctx, s.ContactForms, form)
}

func (s *Store) DeleteContactForm(ctx context.Context, criteria bson.M) bson.M {
	return s.deleteOne(ctx, s.ContactForms, criteria)
}

// Tickets

func (s *Store) FetchTickets(ctx context.Context) []bson.M {
	return s.findMany(ctx, s.Tickets, bson.M{})
}

func (s *Store) FetchTicket(ctx context.Context, ticketNumber string) bson.M {
	return s.findOne(ctx, s.Tickets, bson.M{"TicketNumber": ticketNumber})
}
