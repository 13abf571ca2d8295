package usecase_test

import (
	"net/http"
	"testing"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newContractUsecase(repo *MockContractRepo, candidates *MockCandidateRepo, blobs *MockBlobStore) domain.ContractUsecase {
	return usecase.NewContractUsecase(repo, candidates, blobs)
}

func draftContract() *domain.Contract {
	return &domain.Contract{
		ID:          "con-1",
		CandidateID: "cand-1",
		Type:        domain.JobTypeCDI,
		Status:      domain.ContractStatusDraft,
		Position:    "Développeuse Full Stack",
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Salary:      domain.Salary{Amount: 52000, Currency: "EUR", Period: domain.SalaryPeriodYearly},
	}
}

func TestCreateContract(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockContractRepo)
		candidates := new(MockCandidateRepo)
		uc := newContractUsecase(repo, candidates, new(MockBlobStore))

		candidates.On("GetByID", mock.Anything, "user-1", "cand-1").Return(validCandidate(), nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contract")).Return(nil)

		c := draftContract()
		c.Status = ""
		err := uc.CreateContract(authedCtx("user-1"), c)

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusDraft, c.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Fail_CandidateNotOwned", func(t *testing.T) {
		repo := new(MockContractRepo)
		candidates := new(MockCandidateRepo)
		uc := newContractUsecase(repo, candidates, new(MockBlobStore))

		candidates.On("GetByID", mock.Anything, "user-1", "cand-1").Return(nil, nil)

		err := uc.CreateContract(authedCtx("user-1"), draftContract())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail_InvalidSalary", func(t *testing.T) {
		uc := newContractUsecase(new(MockContractRepo), new(MockCandidateRepo), new(MockBlobStore))

		c := draftContract()
		c.Salary.Amount = 0
		c.Salary.Period = "weekly"
		err := uc.CreateContract(authedCtx("user-1"), c)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Fields["Amount"], "Montant")
		assert.Contains(t, appErr.Fields["Period"], "valeur non autorisée")
	})
}

func TestContractTransitions(t *testing.T) {
	t.Run("Send_Success", func(t *testing.T) {
		repo := new(MockContractRepo)
		uc := newContractUsecase(repo, new(MockCandidateRepo), new(MockBlobStore))

		repo.On("GetByID", mock.Anything, "user-1", "con-1").Return(draftContract(), nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Contract")).Return(nil)

		out, err := uc.SendContract(authedCtx("user-1"), "con-1")

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusSent, out.Status)
	})

	t.Run("Sign_Success", func(t *testing.T) {
		repo := new(MockContractRepo)
		uc := newContractUsecase(repo, new(MockCandidateRepo), new(MockBlobStore))

		c := draftContract()
		c.Status = domain.ContractStatusSent
		repo.On("GetByID", mock.Anything, "user-1", "con-1").Return(c, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Contract")).Return(nil)

		out, err := uc.SignContract(authedCtx("user-1"), "con-1")

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusSigned, out.Status)
	})

	t.Run("Sign_Fail_StillDraft", func(t *testing.T) {
		repo := new(MockContractRepo)
		uc := newContractUsecase(repo, new(MockCandidateRepo), new(MockBlobStore))

		repo.On("GetByID", mock.Anything, "user-1", "con-1").Return(draftContract(), nil)

		_, err := uc.SignContract(authedCtx("user-1"), "con-1")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Send_Fail_AlreadySigned", func(t *testing.T) {
		repo := new(MockContractRepo)
		uc := newContractUsecase(repo, new(MockCandidateRepo), new(MockBlobStore))

		c := draftContract()
		c.Status = domain.ContractStatusSigned
		repo.On("GetByID", mock.Anything, "user-1", "con-1").Return(c, nil)

		_, err := uc.SendContract(authedCtx("user-1"), "con-1")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	})
}

func TestAttachContractFile(t *testing.T) {
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)

	t.Run("Signature_Success", func(t *testing.T) {
		repo := new(MockContractRepo)
		blobs := new(MockBlobStore)
		uc := newContractUsecase(repo, new(MockCandidateRepo), blobs)

		repo.On("GetByID", mock.Anything, "user-1", "con-1").Return(draftContract(), nil)
		blobs.On("Upload", mock.Anything, "signatures/user-1/con-1/signature.png", png, "image/png").
			Return("https://blobs.local/talent/signatures/user-1/con-1/signature.png", nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Contract")).Return(nil)

		out, err := uc.AttachFile(authedCtx("user-1"), "con-1", usecase.ContractFileSignature, "signature.png", png)

		assert.NoError(t, err)
		assert.NotNil(t, out.SignatureURL)
		assert.Nil(t, out.ContractURL)
	})

	t.Run("Fail_UnknownKind", func(t *testing.T) {
		uc := newContractUsecase(new(MockContractRepo), new(MockCandidateRepo), new(MockBlobStore))

		_, err := uc.AttachFile(authedCtx("user-1"), "con-1", "avatar", "x.png", png)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})
}
