package ingest

import (
	"strings"
	"testing"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>INR
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-450.00
<FITID>2024011501
<NAME>SWIGGY ORDER 8812
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>50000.00
<FITID>2024012001
<NAME>SALARY JANUARY
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>49550.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestReadOFXBankStatement(t *testing.T) {
	path := writeFile(t, "statement.ofx", sampleBankOFX)

	transactions, err := ReadOFX(path)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	swiggy := transactions[0]
	assert.Equal(t, "2024-01-15", swiggy.Date)
	assert.Equal(t, "SWIGGY ORDER 8812", swiggy.Description)
	assert.InDelta(t, 450.0, swiggy.Amount, 1e-9)
	assert.Equal(t, model.TypeDebit, swiggy.Type)
	assert.Equal(t, "2024011501", swiggy.RawData["fitid"])

	salary := transactions[1]
	assert.Equal(t, "2024-01-20", salary.Date)
	assert.InDelta(t, 50000.0, salary.Amount, 1e-9)
	assert.Equal(t, model.TypeCredit, salary.Type)
}

func TestReadOFXToleratesMixedCaseSeverity(t *testing.T) {
	content := "  \n" + sampleBankOFX
	content = strings.Replace(content, "<SEVERITY>INFO", "<SEVERITY>Info</SEVERITY>", 1)
	path := writeFile(t, "statement.qfx", content)

	transactions, err := ReadOFX(path)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestReadOFXInvalidFile(t *testing.T) {
	path := writeFile(t, "statement.ofx", "not an ofx document")

	_, err := ReadOFX(path)
	assert.Error(t, err)
}
