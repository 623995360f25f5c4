package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserPreferences are the client-facing settings stored on the account.
type UserPreferences struct {
	Language      string          `bson:"language" json:"language"`
	Theme         string          `bson:"theme" json:"theme"`
	DetectionMode DetectionMethod `bson:"detection_mode" json:"detectionMode"`
	DefaultVolume int             `bson:"default_volume" json:"defaultVolume"`
	Notifications bool            `bson:"notifications" json:"notifications"`
	AutoPlay      bool            `bson:"auto_play" json:"autoPlay"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Language:      "en",
		Theme:         "dark",
		DetectionMode: DetectionText,
		DefaultVolume: 70,
		Notifications: true,
		AutoPlay:      false,
	}
}

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Preferences UserPreferences    `bson:"preferences" json:"preferences"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	UpdatePreferences(ctx context.Context, id primitive.ObjectID, prefs UserPreferences) error
}
