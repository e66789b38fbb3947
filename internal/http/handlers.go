package http

import (
	"log/slog"
	"net/http"
	"time"

	"hisab/internal/core"
	"hisab/internal/ledger"
	applog "hisab/internal/log"
)

// transactionJSON mirrors the persisted record shape so API clients
// and stored state agree on field names.
type transactionJSON struct {
	ID     int64   `json:"id"`
	Desc   string  `json:"desc"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
	Date   string  `json:"date"`
}

func toTransactionJSON(t core.Transaction) transactionJSON {
	return transactionJSON{
		ID:     t.ID,
		Desc:   t.Description,
		Amount: t.Amount.Units(),
		Type:   string(t.Kind),
		Date:   t.Date.String(),
	}
}

func toTransactionListJSON(txns []core.Transaction) []transactionJSON {
	out := make([]transactionJSON, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionJSON(t))
	}
	return out
}

type statisticsJSON struct {
	Count        int    `json:"count"`
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
	Status       string `json:"status"`
}

func toStatisticsJSON(s core.Statistics) statisticsJSON {
	return statisticsJSON{
		Count:        s.Count,
		TotalIncome:  s.TotalIncome.String(),
		TotalExpense: s.TotalExpense.String(),
		Balance:      s.Balance.String(),
		Status:       string(s.Status),
	}
}

// ledgerJSON is the list payload: the full sequence plus the
// statistics derived from that same snapshot.
type ledgerJSON struct {
	Transactions []transactionJSON `json:"transactions"`
	Statistics   statisticsJSON    `json:"statistics"`
}

type summaryJSON struct {
	Category string         `json:"category"`
	Stats    statisticsJSON `json:"stats"`
}

type comparisonJSON struct {
	A        summaryJSON    `json:"a"`
	B        summaryJSON    `json:"b"`
	Combined statisticsJSON `json:"combined"`
}

func toComparisonJSON(r core.ComparisonReport) comparisonJSON {
	return comparisonJSON{
		A:        summaryJSON{Category: string(r.A.Category), Stats: toStatisticsJSON(r.A.Stats)},
		B:        summaryJSON{Category: string(r.B.Category), Stats: toStatisticsJSON(r.B.Stats)},
		Combined: toStatisticsJSON(r.Combined),
	}
}

// ledgerFor resolves the category parameter to its ledger.
func (s *Server) ledgerFor(raw string) (*ledger.Ledger, error) {
	category, err := core.ParseCategory(raw)
	if err != nil {
		return nil, err
	}
	l, ok := s.ledgers.Get(category)
	if !ok {
		return nil, core.ErrInvalidCategory
	}
	return l, nil
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	default:
		MethodNotAllowedResponse("GET, POST").Write(w)
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	l, err := s.ledgerFor(r.URL.Query().Get("category"))
	if err != nil {
		ErrorResponse("", err).Write(w)
		return
	}

	txns := l.Transactions()
	NewResponse().
		Data(ledgerJSON{
			Transactions: toTransactionListJSON(txns),
			Statistics:   toStatisticsJSON(core.Summarize(txns)),
		}).
		Write(w)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		slog.ErrorContext(r.Context(), "Parse body error", applog.FieldError, err, applog.FieldMethod, r.Method, applog.FieldPath, r.URL.Path)
		NewResponse().Status(http.StatusBadRequest).Notice(ledger.NoticeFor(ledger.OpCreate, core.ErrEmptyDescription)).Write(w)
		return
	}

	l, err := s.ledgerFor(parser.Get("category"))
	if err != nil {
		ErrorResponse(ledger.OpCreate, err).Write(w)
		return
	}

	kind, err := core.ParseKind(parser.Get("type"))
	if err != nil {
		ErrorResponse(ledger.OpCreate, err).Write(w)
		return
	}

	created, err := l.Create(r.Context(), parser.Get("description"), parser.Get("amount"), kind)
	if err != nil {
		slog.WarnContext(r.Context(), "Create transaction rejected",
			applog.FieldCategory, l.Category(),
			applog.FieldError, err)
		ErrorResponse(ledger.OpCreate, err).Write(w)
		return
	}

	NewResponse().
		Status(http.StatusCreated).
		Notice(ledger.NoticeFor(ledger.OpCreate, nil)).
		Data(toTransactionJSON(created)).
		Write(w)
}

func (s *Server) handleEditTransaction(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}

	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		NewResponse().Status(http.StatusBadRequest).Notice(ledger.NoticeFor(ledger.OpEdit, core.ErrEmptyDescription)).Write(w)
		return
	}

	l, err := s.ledgerFor(parser.Get("category"))
	if err != nil {
		ErrorResponse(ledger.OpEdit, err).Write(w)
		return
	}

	id, err := parser.GetInt64("id")
	if err != nil {
		ErrorResponse(ledger.OpEdit, ledger.ErrNotFound).Write(w)
		return
	}

	updated, err := l.Edit(r.Context(), id, parser.Get("description"), parser.Get("amount"))
	if err != nil {
		slog.WarnContext(r.Context(), "Edit transaction rejected",
			applog.FieldCategory, l.Category(),
			applog.FieldTransaction, id,
			applog.FieldError, err)
		ErrorResponse(ledger.OpEdit, err).Write(w)
		return
	}

	NewResponse().
		Notice(ledger.NoticeFor(ledger.OpEdit, nil)).
		Data(toTransactionJSON(updated)).
		Write(w)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if resp := RequireDeleteOrPOST(r); resp != nil {
		resp.Write(w)
		return
	}

	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		NewResponse().Status(http.StatusBadRequest).Notice(ledger.NoticeFor(ledger.OpDelete, core.ErrEmptyDescription)).Write(w)
		return
	}

	l, err := s.ledgerFor(parser.Get("category"))
	if err != nil {
		ErrorResponse(ledger.OpDelete, err).Write(w)
		return
	}

	id, err := parser.GetInt64("id")
	if err != nil {
		ErrorResponse(ledger.OpDelete, ledger.ErrNotFound).Write(w)
		return
	}

	if err := l.Delete(r.Context(), id, parser.GetBool("confirmed")); err != nil {
		slog.WarnContext(r.Context(), "Delete transaction rejected",
			applog.FieldCategory, l.Category(),
			applog.FieldTransaction, id,
			applog.FieldError, err)
		ErrorResponse(ledger.OpDelete, err).Write(w)
		return
	}

	NewResponse().
		Notice(ledger.NoticeFor(ledger.OpDelete, nil)).
		Write(w)
}

func (s *Server) handleClearTransactions(w http.ResponseWriter, r *http.Request) {
	if resp := RequireDeleteOrPOST(r); resp != nil {
		resp.Write(w)
		return
	}

	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		NewResponse().Status(http.StatusBadRequest).Notice(ledger.NoticeFor(ledger.OpClear, core.ErrEmptyDescription)).Write(w)
		return
	}

	l, err := s.ledgerFor(parser.Get("category"))
	if err != nil {
		ErrorResponse(ledger.OpClear, err).Write(w)
		return
	}

	if err := l.ClearAll(r.Context(), parser.GetBool("confirmed")); err != nil {
		slog.WarnContext(r.Context(), "Clear transactions rejected",
			applog.FieldCategory, l.Category(),
			applog.FieldError, err)
		ErrorResponse(ledger.OpClear, err).Write(w)
		return
	}

	NewResponse().
		Notice(ledger.NoticeFor(ledger.OpClear, nil)).
		Write(w)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	l, err := s.ledgerFor(r.URL.Query().Get("category"))
	if err != nil {
		ErrorResponse("", err).Write(w)
		return
	}

	NewResponse().
		Data(toStatisticsJSON(l.Statistics())).
		Write(w)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	l, err := s.ledgerFor(r.URL.Query().Get("category"))
	if err != nil {
		ErrorResponse("", err).Write(w)
		return
	}

	filename, content, err := l.Export(time.Now())
	if err != nil {
		slog.WarnContext(r.Context(), "Export rejected",
			applog.FieldCategory, l.Category(),
			applog.FieldError, err)
		ErrorResponse("", err).Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	NewResponse().
		Data(toComparisonJSON(s.ledgers.Compare())).
		Write(w)
}
