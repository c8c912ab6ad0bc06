package services

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockEmailClient struct {
	mock.Mock
}

type MockCampStore struct {
	mock.Mock
}

func (m *MockEmailClient) SendEmail(ctx context.Context, input *sesv2.SendEmailInput, opts ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, input, opts)
	return args.Get(0).(*sesv2.SendEmailOutput), args.Error(1)
}

func (m *MockCampStore) GetAccountByEmail(email string) (*models.Account, error) {
	args := m.Called(email)
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockCampStore) CreateAccount(email, fullName, passwordHash string, role models.Role) (*models.Account, error) {
	args := m.Called(email, fullName, passwordHash, role)
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockCampStore) CreateSessionToken(accountID uuid.UUID, token string, expiresAt time.Time) (*models.SessionToken, error) {
	args := m.Called(accountID, token, expiresAt)
	return args.Get(0).(*models.SessionToken), args.Error(1)
}

func (m *MockCampStore) ResolveSessionToken(tokenValue string) (*models.Account, error) {
	args := m.Called(tokenValue)
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockCampStore) GetCamper(camperID uuid.UUID) (*models.Camper, error) {
	args := m.Called(camperID)
	return args.Get(0).(*models.Camper), args.Error(1)
}

func (m *MockCampStore) CreateCamper(req models.CamperCreateRequest) (*models.Camper, error) {
	args := m.Called(req)
	return args.Get(0).(*models.Camper), args.Error(1)
}

func (m *MockCampStore) ListCampers() ([]models.Camper, error) {
	args := m.Called()
	return args.Get(0).([]models.Camper), args.Error(1)
}

func (m *MockCampStore) CreateCamperWithOwner(parentAccountID uuid.UUID, req models.CamperCreateRequest) (*models.ParentCamperLink, error) {
	args := m.Called(parentAccountID, req)
	return args.Get(0).(*models.ParentCamperLink), args.Error(1)
}

func (m *MockCampStore) ListOwnedCampers(parentAccountID uuid.UUID) ([]models.ParentCamperLink, error) {
	args := m.Called(parentAccountID)
	return args.Get(0).([]models.ParentCamperLink), args.Error(1)
}

func (m *MockCampStore) OwnsCamper(parentAccountID, camperID uuid.UUID) (bool, error) {
	args := m.Called(parentAccountID, camperID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCampStore) GetCampYearByYear(year int) (*models.CampYear, error) {
	args := m.Called(year)
	return args.Get(0).(*models.CampYear), args.Error(1)
}

func (m *MockCampStore) GetOrCreateCampYear(year int) (*models.CampYear, error) {
	args := m.Called(year)
	return args.Get(0).(*models.CampYear), args.Error(1)
}

func (m *MockCampStore) GetEnrollment(enrollmentID uuid.UUID) (*models.Enrollment, error) {
	args := m.Called(enrollmentID)
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *MockCampStore) CreateEnrollment(campYearID, camperID uuid.UUID) (*models.Enrollment, error) {
	args := m.Called(campYearID, camperID)
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *MockCampStore) UpdateEnrollment(enrollmentID uuid.UUID, status models.EnrollmentStatus, notes *string) (*models.Enrollment, error) {
	args := m.Called(enrollmentID, status, notes)
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *MockCampStore) ListEnrollmentsForParent(parentAccountID uuid.UUID, campYearID *uuid.UUID) ([]models.Enrollment, error) {
	args := m.Called(parentAccountID, campYearID)
	return args.Get(0).([]models.Enrollment), args.Error(1)
}

func (m *MockCampStore) GetGroup(groupID uuid.UUID) (*models.Group, error) {
	args := m.Called(groupID)
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockCampStore) CreateGroup(campYear models.CampYear, name string, description *string) (*models.Group, error) {
	args := m.Called(campYear, name, description)
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockCampStore) ListGroups(campYear *int) ([]models.Group, error) {
	args := m.Called(campYear)
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockCampStore) AddGroupMember(groupID uuid.UUID, camper models.Camper) (*models.GroupMember, error) {
	args := m.Called(groupID, camper)
	return args.Get(0).(*models.GroupMember), args.Error(1)
}

func (m *MockCampStore) CreateEvent(req models.GroupEventCreateRequest) (*models.GroupEvent, error) {
	args := m.Called(req)
	return args.Get(0).(*models.GroupEvent), args.Error(1)
}

func (m *MockCampStore) ListEvents(groupID *uuid.UUID, campYear *int) ([]models.GroupEvent, error) {
	args := m.Called(groupID, campYear)
	return args.Get(0).([]models.GroupEvent), args.Error(1)
}

func (m *MockCampStore) OwnedCamperIDs(parentAccountID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(parentAccountID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockCampStore) MembershipsForCampers(camperIDs []uuid.UUID) ([]models.GroupMembership, error) {
	args := m.Called(camperIDs)
	return args.Get(0).([]models.GroupMembership), args.Error(1)
}

func (m *MockCampStore) EventsForGroups(groupIDs []uuid.UUID, campYear *int) ([]models.GroupEvent, error) {
	args := m.Called(groupIDs, campYear)
	return args.Get(0).([]models.GroupEvent), args.Error(1)
}

func (m *MockCampStore) CampersByIDs(camperIDs []uuid.UUID) (map[uuid.UUID]models.Camper, error) {
	args := m.Called(camperIDs)
	return args.Get(0).(map[uuid.UUID]models.Camper), args.Error(1)
}

func (m *MockCampStore) GroupsByIDs(groupIDs []uuid.UUID) (map[uuid.UUID]models.Group, error) {
	args := m.Called(groupIDs)
	return args.Get(0).(map[uuid.UUID]models.Group), args.Error(1)
}
