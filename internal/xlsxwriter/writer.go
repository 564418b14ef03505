// =============================================================================
// MISMO Anonymizer - XLSX Summary Writer
// =============================================================================
//
// Optional human-readable companion to the JSON output: one workbook per
// processed report, with a sheet for the debt inventory and a sheet for
// the bureau scores. Meant for analysts reviewing a batch, not for the
// optimization engine.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
)

const (
	debtSheet  = "Debts"
	scoreSheet = "Credit Scores"
)

var debtHeaders = []string{
	"External ID",
	"Group",
	"Lender",
	"Type",
	"Principal Balance",
	"Initial Balance",
	"Monthly Payment",
	"Term (months)",
	"Rate Type",
	"Origination Date",
	"Last Payment Date",
	"Deferred",
	"Federal",
	"Chargeoff",
	"In Collection",
	"FHA",
}

var scoreHeaders = []string{
	"Bureau",
	"Score",
	"Date",
	"Factors",
}

// WriteSummary writes the debt inventory workbook for one document.
func WriteSummary(doc *types.Document, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeDebtSheet(f, doc.Debts); err != nil {
		return err
	}
	if err := writeScoreSheet(f, doc.CreditScores); err != nil {
		return err
	}

	// The default sheet excelize creates is replaced by the debt sheet.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", outputPath, err)
	}
	return nil
}

func writeDebtSheet(f *excelize.File, debts []types.Debt) error {
	if _, err := f.NewSheet(debtSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", debtSheet, err)
	}

	if err := writeHeaderRow(f, debtSheet, debtHeaders); err != nil {
		return err
	}

	for i, debt := range debts {
		row := []interface{}{
			debt.ExternalID,
			string(debt.Group),
			debt.Lender,
			debt.Type,
			debt.PrincipalBalance,
			debt.InitialBalance,
			debt.ScheduledMonthlyPayment,
			debt.Term,
			string(debt.InterestRateType),
			debt.OriginationDate,
			debt.LastPaymentDate,
			debt.IsDeferred,
			debt.IsFederalLoan,
			debt.IsChargeoff,
			debt.IsInCollection,
			debt.IsFHA,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell coordinates: %w", err)
		}
		if err := f.SetSheetRow(debtSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write debt row %d: %w", i+1, err)
		}
	}
	return nil
}

func writeScoreSheet(f *excelize.File, scores []types.CreditScore) error {
	if _, err := f.NewSheet(scoreSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", scoreSheet, err)
	}

	if err := writeHeaderRow(f, scoreSheet, scoreHeaders); err != nil {
		return err
	}

	for i, score := range scores {
		factors := ""
		for j, factor := range score.Factors {
			if j > 0 {
				factors += "; "
			}
			factors += factor.Code + " " + factor.Description
		}

		row := []interface{}{
			score.Provider,
			score.Value,
			score.Date,
			factors,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell coordinates: %w", err)
		}
		if err := f.SetSheetRow(scoreSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write score row %d: %w", i+1, err)
		}
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("failed to write header row on %s: %w", sheet, err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("failed to compute cell coordinates: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header row on %s: %w", sheet, err)
	}
	return nil
}
