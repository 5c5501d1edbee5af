package ingest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/ledgerscope/ledgerscope/internal/common"
	"github.com/ledgerscope/ledgerscope/internal/model"
)

var (
	severityPattern = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagPattern  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// ReadOFX parses an OFX/QFX statement into transactions. The returned
// transactions carry date, description, amount and direction; IDs and
// categories are assigned by the caller.
func ReadOFX(path string) ([]model.Transaction, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	transactions := make([]model.Transaction, 0)
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, convertOFX(ofxTx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, convertOFX(ofxTx))
			}
		}
	}

	if len(transactions) == 0 {
		return nil, common.ErrEmptyTable
	}
	return transactions, nil
}

// preprocessOFX fixes common formatting issues in OFX files: leading
// whitespace before the header, mixed-case SEVERITY values, and SGML
// opening tags missing their closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityPattern.ReplaceAllStringFunc(content, strings.ToUpper)
	content = openTagPattern.ReplaceAllString(content, "$1>")
	return content
}

// convertOFX maps one OFX transaction onto the model. OFX uses signed
// amounts, negative for money out.
func convertOFX(ofxTx ofxgo.Transaction) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()
	txType := model.TypeCredit
	if amount < 0 {
		amount = -amount
		txType = model.TypeDebit
	}

	return model.Transaction{
		Date:        ofxTx.DtPosted.Time.Format("2006-01-02"),
		Description: ofxDescription(ofxTx),
		Amount:      amount,
		Type:        txType,
		RawData: map[string]string{
			"fitid":   string(ofxTx.FiTID),
			"trntype": fmt.Sprintf("%v", ofxTx.TrnType),
		},
	}
}

// ofxDescription prefers the payee name, then NAME, then MEMO.
func ofxDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	if name := strings.TrimSpace(string(tx.Name)); name != "" {
		return name
	}
	return strings.TrimSpace(string(tx.Memo))
}
