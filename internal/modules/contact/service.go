package contact

import (
	"context"
	"time"

	"github.com/yaritu/core/internal/config"
	"github.com/yaritu/core/internal/database"
	"github.com/yaritu/core/internal/models"
	pkgmail "github.com/yaritu/core/internal/pkg/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service is the Mongo-backed Store.
type Service struct {
	coll *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{coll: db.Collection(database.CollContacts)}
}

func (s *Service) Create(ctx context.Context, m *models.ContactModel) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	m.Touch(time.Now())
	_, err := s.coll.InsertOne(ctx, m)
	return err
}

// List returns all submissions, newest first.
func (s *Service) List(ctx context.Context) ([]models.ContactModel, error) {
	cur, err := s.coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	items := []models.ContactModel{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MailNotifier is the Notifier backed by the shared mail sender.
type MailNotifier struct {
	sender   *pkgmail.Sender
	notifyTo string
}

func NewMailNotifier(cfg config.MailConfig) *MailNotifier {
	return &MailNotifier{sender: pkgmail.New(cfg), notifyTo: cfg.NotifyTo}
}

func (n *MailNotifier) NotifyContact(m *models.ContactModel) error {
	if n.notifyTo == "" {
		return nil
	}
	return n.sender.SendContactNotify(n.notifyTo, pkgmail.ContactNotifyData{
		FullName: m.FullName,
		Email:    m.Email,
		Phone:    m.Phone,
		Subject:  m.Subject,
		Message:  m.Message,
	})
}
