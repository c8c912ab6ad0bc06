package services

import (
	"time"

	"github.com/briarwood-camp/camp-services/internal/appconfig"
	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
)

// CampStore is the persistence surface the services depend on. *db.CampDB
// implements it; tests substitute a mock.
type CampStore interface {
	GetAccountByEmail(email string) (*models.Account, error)
	CreateAccount(email, fullName, passwordHash string, role models.Role) (*models.Account, error)
	CreateSessionToken(accountID uuid.UUID, token string, expiresAt time.Time) (*models.SessionToken, error)
	ResolveSessionToken(tokenValue string) (*models.Account, error)

	GetCamper(camperID uuid.UUID) (*models.Camper, error)
	CreateCamper(req models.CamperCreateRequest) (*models.Camper, error)
	ListCampers() ([]models.Camper, error)
	CreateCamperWithOwner(parentAccountID uuid.UUID, req models.CamperCreateRequest) (*models.ParentCamperLink, error)
	ListOwnedCampers(parentAccountID uuid.UUID) ([]models.ParentCamperLink, error)
	OwnsCamper(parentAccountID, camperID uuid.UUID) (bool, error)

	GetCampYearByYear(year int) (*models.CampYear, error)
	GetOrCreateCampYear(year int) (*models.CampYear, error)

	GetEnrollment(enrollmentID uuid.UUID) (*models.Enrollment, error)
	CreateEnrollment(campYearID, camperID uuid.UUID) (*models.Enrollment, error)
	UpdateEnrollment(enrollmentID uuid.UUID, status models.EnrollmentStatus, notes *string) (*models.Enrollment, error)
	ListEnrollmentsForParent(parentAccountID uuid.UUID, campYearID *uuid.UUID) ([]models.Enrollment, error)

	GetGroup(groupID uuid.UUID) (*models.Group, error)
	CreateGroup(campYear models.CampYear, name string, description *string) (*models.Group, error)
	ListGroups(campYear *int) ([]models.Group, error)
	AddGroupMember(groupID uuid.UUID, camper models.Camper) (*models.GroupMember, error)

	CreateEvent(req models.GroupEventCreateRequest) (*models.GroupEvent, error)
	ListEvents(groupID *uuid.UUID, campYear *int) ([]models.GroupEvent, error)

	OwnedCamperIDs(parentAccountID uuid.UUID) ([]uuid.UUID, error)
	MembershipsForCampers(camperIDs []uuid.UUID) ([]models.GroupMembership, error)
	EventsForGroups(groupIDs []uuid.UUID, campYear *int) ([]models.GroupEvent, error)
	CampersByIDs(camperIDs []uuid.UUID) (map[uuid.UUID]models.Camper, error)
	GroupsByIDs(groupIDs []uuid.UUID) (map[uuid.UUID]models.Group, error)
}

// Service contains all shared dependencies for handlers.
type Service struct {
	Config *appconfig.Config
	DB     CampStore
	Email  EmailClient // nil when welcome emails are disabled
}

func (svc *Service) tokenTTL() time.Duration {
	return time.Duration(svc.Config.Auth.TokenTTLMinutes) * time.Minute
}
