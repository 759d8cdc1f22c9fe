package crm

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suretrust/underwriting-service/internal/domain/model"
	"github.com/suretrust/underwriting-service/internal/domain/port"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCollectReturnsWellFormedRecord(t *testing.T) {
	collector := NewStubCollector(testLogger())

	record, err := collector.Collect(context.Background(), "CUST001")
	require.NoError(t, err)

	assert.Equal(t, "CUST001", record.CustomerID)
	require.NoError(t, record.Validate())
	assert.Equal(t, "id_card_front_CUST001.jpg", record.IdentityDocument.FrontImage)
	assert.Equal(t, record.IdentityDocument.HolderName, record.PhoneVerification.RegisteredName)
	assert.True(t, record.PhoneVerification.Verified)
	assert.Equal(t, model.VerificationVerified, record.IncomeProof.VerificationStatus)
	assert.Len(t, record.HistoryRecords, 2)
	assert.True(t, record.ApplicationForm.CoverageAmount.Equal(decimal.NewFromInt(100_000)))
}

func TestCollectSuspiciousProfile(t *testing.T) {
	collector := NewStubCollector(testLogger())

	record, err := collector.Collect(context.Background(), "CUST999")
	require.NoError(t, err)

	assert.Empty(t, record.HistoryRecords)
	assert.True(t, record.ApplicationForm.CoverageAmount.Equal(decimal.NewFromInt(2_000_000)))
}

func TestCollectEmptyCustomerID(t *testing.T) {
	collector := NewStubCollector(testLogger())

	_, err := collector.Collect(context.Background(), "")

	var collectionErr *port.CollectionError
	require.ErrorAs(t, err, &collectionErr)
}
