package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petcare-mx/platform/internal/core/domain"
)

const accountsCollection = "accounts"

// MongoAccountRepository persists accounts: credential, profile, and
// the optional vet block live in one document keyed by the shared
// numeric id.
type MongoAccountRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{db: db, coll: db.Collection(accountsCollection)}
}

type mongoVet struct {
	LicenseNumber     string `bson:"license_number"`
	ProfessionalTitle string `bson:"professional_title"`
	Institution       string `bson:"institution,omitempty"`
	Specialty         string `bson:"specialty,omitempty"`
}

type mongoAccount struct {
	ID             int64     `bson:"_id"`
	Username       string    `bson:"username"`
	PasswordHash   string    `bson:"password_hash"`
	Role           string    `bson:"role"`
	FirstName      string    `bson:"first_name"`
	MiddleName     string    `bson:"middle_name,omitempty"`
	LastName       string    `bson:"last_name"`
	SecondLastName string    `bson:"second_last_name,omitempty"`
	PhoneNumber    string    `bson:"phone_number"`
	Email          string    `bson:"email"`
	Address        string    `bson:"address,omitempty"`
	Vet            *mongoVet `bson:"vet,omitempty"`
	CreatedAt      int64     `bson:"created_at"`
}

// Create inserts an account, assigning the next numeric id to both the
// credential and the profile.
func (r *MongoAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	id, err := nextSequence(ctx, r.db, accountsCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoAccount{
		ID:             id,
		Username:       account.Credential.Identity,
		PasswordHash:   account.Credential.PasswordHash,
		Role:           string(account.Credential.Role),
		FirstName:      account.Profile.FirstName,
		MiddleName:     account.Profile.MiddleName,
		LastName:       account.Profile.LastName,
		SecondLastName: account.Profile.SecondLastName,
		PhoneNumber:    account.Profile.PhoneNumber,
		Email:          account.Profile.Email,
		Address:        account.Profile.Address,
		CreatedAt:      time.Now().UTC().Unix(),
	}
	if account.Vet != nil {
		doc.Vet = &mongoVet{
			LicenseNumber:     account.Vet.LicenseNumber,
			ProfessionalTitle: account.Vet.ProfessionalTitle,
			Institution:       account.Vet.Institution,
			Specialty:         account.Vet.Specialty,
		}
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	return toAccount(doc), nil
}

// FindByIdentity retrieves an account by username.
func (r *MongoAccountRepository) FindByIdentity(ctx context.Context, identity string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"username": identity})
}

// FindByID retrieves an account by numeric id.
func (r *MongoAccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// ExistsIdentityOrEmail reports whether any account already uses the
// given username or email.
func (r *MongoAccountRepository) ExistsIdentityOrEmail(ctx context.Context, identity, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": identity},
		bson.M{"email": email},
	}}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count accounts: %w", err)
	}
	return n > 0, nil
}

// ListByRole returns all accounts with the given role.
func (r *MongoAccountRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Account, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"role": string(role)})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []*domain.Account
	for cursor.Next(ctx) {
		var doc mongoAccount
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, toAccount(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var doc mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return toAccount(doc), nil
}

func toAccount(doc mongoAccount) *domain.Account {
	account := &domain.Account{
		Credential: domain.Credential{
			ID:           doc.ID,
			Identity:     doc.Username,
			PasswordHash: doc.PasswordHash,
			Role:         domain.ParseRole(doc.Role),
		},
		Profile: domain.Profile{
			ID:             doc.ID,
			FirstName:      doc.FirstName,
			MiddleName:     doc.MiddleName,
			LastName:       doc.LastName,
			SecondLastName: doc.SecondLastName,
			PhoneNumber:    doc.PhoneNumber,
			Email:          doc.Email,
			Address:        doc.Address,
		},
	}
	if doc.Vet != nil {
		account.Vet = &domain.VetCredentials{
			LicenseNumber:     doc.Vet.LicenseNumber,
			ProfessionalTitle: doc.Vet.ProfessionalTitle,
			Institution:       doc.Vet.Institution,
			Specialty:         doc.Vet.Specialty,
		}
	}
	return account
}
