package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	prodDBName = "CouchFest"
	testDBName = "couchtest"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	JwtSecret      []byte
	TicketSecret   []byte
	RedisAddr      string
	AllowedOrigins []string
}

// Load reads configuration from the environment. JWT_SECRET is mandatory;
// everything else has a sensible default. MODE=1 selects the production
// database, anything else the test database.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	dbName := testDBName
	if os.Getenv("MODE") == "1" {
		dbName = prodDBName
	}

	ticketSecret := os.Getenv("TICKET_SECRET")
	if ticketSecret == "" {
		ticketSecret = secret
	}

	origins := []string{"*"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:           port,
		MongoURI:       uri,
		DBName:         dbName,
		JwtSecret:      []byte(secret),
		TicketSecret:   []byte(ticketSecret),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		AllowedOrigins: origins,
	}, nil
}
