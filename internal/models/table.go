package models

import (
	"time"

	"github.com/google/uuid"
)

// Table names and their exact column sets.
const (
	TableDimCustomer            = "DimCustomer"
	TableFactAccount            = "FactAccount"
	TableFactPaymentTransaction = "FactPaymentTransaction"
)

var (
	DimCustomerColumns            = []string{"CustomerID", "CustomerNumber", "FirstName", "LastName"}
	FactAccountColumns            = []string{"AccountID", "CustomerID", "AccountBalance", "LastUpdated"}
	FactPaymentTransactionColumns = []string{"CustomerID", "AccountID", "TransactionAmount", "TransactionType", "TransactionTimestamp", "TransactionID"}
)

// Table is a named set of rows ready to be persisted by a TableSink.
// Each row holds one value per column, in Columns order; a nil value means NULL.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Dataset is the output of one generation run.
type Dataset struct {
	RunID       uuid.UUID
	GeneratedAt time.Time

	Customers []Customer
	// ProvisionedAccounts is the account table before ledger projection.
	ProvisionedAccounts []Account
	// Accounts is the projected ledger: ProvisionedAccounts followed by one row per transaction.
	Accounts     []Account
	Transactions []Transaction
}

// Tables returns the dataset as the three exported tables.
func (d *Dataset) Tables() []Table {
	customers := Table{Name: TableDimCustomer, Columns: DimCustomerColumns, Rows: make([][]any, 0, len(d.Customers))}
	for _, c := range d.Customers {
		customers.Rows = append(customers.Rows, c.Row())
	}

	accounts := Table{Name: TableFactAccount, Columns: FactAccountColumns, Rows: make([][]any, 0, len(d.Accounts))}
	for _, a := range d.Accounts {
		accounts.Rows = append(accounts.Rows, a.Row())
	}

	transactions := Table{Name: TableFactPaymentTransaction, Columns: FactPaymentTransactionColumns, Rows: make([][]any, 0, len(d.Transactions))}
	for _, t := range d.Transactions {
		transactions.Rows = append(transactions.Rows, t.Row())
	}

	return []Table{customers, accounts, transactions}
}
