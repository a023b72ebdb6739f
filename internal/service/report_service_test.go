package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gestao-associado-svc/internal/repository"
)

func TestExportDuesToExcel(t *testing.T) {
	db := setupTestDB(t)
	log := newTestLogger()
	memberRepo := repository.NewMemberRepository(db)
	dueRepo := repository.NewDueRepository(db)
	members := NewMemberService(memberRepo, db, log)
	ledger := NewLedgerService(dueRepo, memberRepo, db, log)
	reports := NewReportService(dueRepo, log)

	in := testMemberInput("Maria Souza")
	in.NationalID = "52998224725"
	member := createTestMember(t, members, in)

	_, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	content, filename, err := reports.ExportDuesToExcel(nil)
	require.NoError(t, err)
	assert.Contains(t, filename, "mensalidades_")
	assert.Contains(t, filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Mensalidades"
	header, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "CPF", header)

	nationalID, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", nationalID)

	name, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", name)

	status, err := f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "Não Pago", status)
}
