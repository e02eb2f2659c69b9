package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirehub/internship-portal/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		mockSetup   func(reader *MockAccountReader, writer *MockAccountWriter)
		expectedID  int64
		expectedErr error
	}{
		{
			name: "success",
			mockSetup: func(reader *MockAccountReader, writer *MockAccountWriter) {
				reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				writer.EXPECT().Save(gomock.Any(), "Alice", "alice@example.com", gomock.Any(), models.RoleStudent).Return(int64(1), nil)
			},
			expectedID: 1,
		},
		{
			name: "email taken",
			mockSetup: func(reader *MockAccountReader, writer *MockAccountWriter) {
				reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").
					Return(&models.AccountDB{ID: 1, Email: "alice@example.com"}, nil)
			},
			expectedErr: ErrEmailTaken,
		},
		{
			name: "reader error",
			mockSetup: func(reader *MockAccountReader, writer *MockAccountWriter) {
				reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
		{
			name: "writer error",
			mockSetup: func(reader *MockAccountReader, writer *MockAccountWriter) {
				reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				writer.EXPECT().Save(gomock.Any(), "Alice", "alice@example.com", gomock.Any(), models.RoleStudent).
					Return(int64(0), errors.New("insert failed"))
			},
			expectedErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockAccountReader(ctrl)
			writer := NewMockAccountWriter(ctrl)
			tt.mockSetup(reader, writer)

			svc := NewAuthService(reader, writer, NewMockTokenGenerator(ctrl))
			id, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret", models.RoleStudent)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAccountReader(ctrl)
	writer := NewMockAccountWriter(ctrl)

	var storedHash string
	reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
	writer.EXPECT().Save(gomock.Any(), "Alice", "alice@example.com", gomock.Any(), models.RoleStudent).
		DoAndReturn(func(_ context.Context, _, _, passwordHash string, _ models.Role) (int64, error) {
			storedHash = passwordHash
			return 1, nil
		})

	svc := NewAuthService(reader, writer, NewMockTokenGenerator(ctrl))
	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret", models.RoleStudent)
	assert.NoError(t, err)

	assert.NotEqual(t, "secret", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret")))
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	account := &models.AccountDB{
		ID:           7,
		Email:        "prof@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleFaculty,
	}

	tests := []struct {
		name          string
		password      string
		mockSetup     func(reader *MockAccountReader, jwt *MockTokenGenerator)
		expectedToken string
		expectedRole  models.Role
		expectedErr   error
	}{
		{
			name:     "success",
			password: "secret",
			mockSetup: func(reader *MockAccountReader, jwt *MockTokenGenerator) {
				reader.EXPECT().GetByEmail(gomock.Any(), "prof@example.com").Return(account, nil)
				jwt.EXPECT().Generate(gomock.Any(), int64(7), "prof@example.com", models.RoleFaculty).Return("signed-token", nil)
			},
			expectedToken: "signed-token",
			expectedRole:  models.RoleFaculty,
		},
		{
			name:     "unknown email",
			password: "secret",
			mockSetup: func(reader *MockAccountReader, jwt *MockTokenGenerator) {
				reader.EXPECT().GetByEmail(gomock.Any(), "prof@example.com").Return(nil, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "not-the-secret",
			mockSetup: func(reader *MockAccountReader, jwt *MockTokenGenerator) {
				reader.EXPECT().GetByEmail(gomock.Any(), "prof@example.com").Return(account, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "token generation fails",
			password: "secret",
			mockSetup: func(reader *MockAccountReader, jwt *MockTokenGenerator) {
				reader.EXPECT().GetByEmail(gomock.Any(), "prof@example.com").Return(account, nil)
				jwt.EXPECT().Generate(gomock.Any(), int64(7), "prof@example.com", models.RoleFaculty).
					Return("", errors.New("signing failed"))
			},
			expectedErr: errors.New("signing failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockAccountReader(ctrl)
			jwt := NewMockTokenGenerator(ctrl)
			tt.mockSetup(reader, jwt)

			svc := NewAuthService(reader, NewMockAccountWriter(ctrl), jwt)
			token, role, err := svc.Login(context.Background(), "prof@example.com", tt.password)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
				assert.Equal(t, tt.expectedRole, role)
			}
		})
	}
}
