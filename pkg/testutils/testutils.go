// Package testutils provides an in-memory UnitOfWork and repositories
// for service and webapi tests, plus small HTTP helpers. The fake
// serializes units of work with a mutex and restores a snapshot on
// error, so tests exercise the same commit-or-nothing contract the
// gorm implementation provides.
package testutils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/bookkeep/pkg/domain"
	"github.com/mfcarvalho/bookkeep/pkg/dto"
	"github.com/mfcarvalho/bookkeep/pkg/repository"
)

// Failures lets a test force specific repository operations to fail so
// rollback behavior can be observed.
type Failures struct {
	TransferCreate error
	PaymentCreate  error
	AdjustBalance  error
}

type state struct {
	accounts  map[uuid.UUID]dto.AccountRead
	transfers map[uuid.UUID]dto.TransferRead
	payments  map[uuid.UUID]dto.PaymentRead
	creditors map[uuid.UUID]dto.CreditorRead

	seq   int
	order map[uuid.UUID]int
}

func newState() *state {
	return &state{
		accounts:  map[uuid.UUID]dto.AccountRead{},
		transfers: map[uuid.UUID]dto.TransferRead{},
		payments:  map[uuid.UUID]dto.PaymentRead{},
		creditors: map[uuid.UUID]dto.CreditorRead{},
		order:     map[uuid.UUID]int{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.transfers {
		c.transfers[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.creditors {
		c.creditors[k] = v
	}
	for k, v := range s.order {
		c.order[k] = v
	}
	c.seq = s.seq
	return c
}

func (s *state) track(id uuid.UUID) {
	s.seq++
	s.order[id] = s.seq
}

// FakeUoW is an in-memory repository.UnitOfWork.
type FakeUoW struct {
	mu   *sync.Mutex
	st   *state
	inTx bool

	Failures *Failures
}

// NewFakeUoW creates an empty in-memory unit of work.
func NewFakeUoW() *FakeUoW {
	return &FakeUoW{
		mu:       &sync.Mutex{},
		st:       newState(),
		Failures: &Failures{},
	}
}

// Do serializes units of work behind a mutex. On error the pre-call
// snapshot is restored, mirroring a database rollback.
func (u *FakeUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.inTx {
		return fn(u)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := u.st.clone()
	tx := &FakeUoW{mu: u.mu, st: u.st, inTx: true, Failures: u.Failures}
	if err := fn(tx); err != nil {
		*u.st = *snapshot
		return err
	}
	return nil
}

// GetRepository returns the fake repository for the requested interface
// type.
func (u *FakeUoW) GetRepository(repoType reflect.Type) (any, error) {
	switch repoType {
	case reflect.TypeOf((*repository.AccountRepository)(nil)).Elem():
		return &fakeAccountRepo{u}, nil
	case reflect.TypeOf((*repository.TransferRepository)(nil)).Elem():
		return &fakeTransferRepo{u}, nil
	case reflect.TypeOf((*repository.PaymentRepository)(nil)).Elem():
		return &fakePaymentRepo{u}, nil
	case reflect.TypeOf((*repository.CreditorRepository)(nil)).Elem():
		return &fakeCreditorRepo{u}, nil
	}
	return nil, fmt.Errorf("unsupported repository type: %v", repoType)
}

// AccountRepository returns the fake account repository.
func (u *FakeUoW) AccountRepository() (repository.AccountRepository, error) {
	return &fakeAccountRepo{u}, nil
}

// TransferRepository returns the fake transfer repository.
func (u *FakeUoW) TransferRepository() (repository.TransferRepository, error) {
	return &fakeTransferRepo{u}, nil
}

// PaymentRepository returns the fake payment repository.
func (u *FakeUoW) PaymentRepository() (repository.PaymentRepository, error) {
	return &fakePaymentRepo{u}, nil
}

// CreditorRepository returns the fake creditor repository.
func (u *FakeUoW) CreditorRepository() (repository.CreditorRepository, error) {
	return &fakeCreditorRepo{u}, nil
}

func (u *FakeUoW) lock() {
	if !u.inTx {
		u.mu.Lock()
	}
}

func (u *FakeUoW) unlock() {
	if !u.inTx {
		u.mu.Unlock()
	}
}

// SeedAccount inserts an account directly into the store and returns
// its read model.
func (u *FakeUoW) SeedAccount(number, name string, balance decimal.Decimal) dto.AccountRead {
	u.lock()
	defer u.unlock()

	now := time.Now().UTC()
	a := dto.AccountRead{
		ID:             uuid.New(),
		Number:         number,
		Name:           name,
		InitialBalance: balance,
		CurrentBalance: balance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	u.st.accounts[a.ID] = a
	u.st.track(a.ID)
	return a
}

// SeedCreditor inserts a creditor directly into the store and returns
// its read model.
func (u *FakeUoW) SeedCreditor(name string) dto.CreditorRead {
	u.lock()
	defer u.unlock()

	now := time.Now().UTC()
	c := dto.CreditorRead{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.st.creditors[c.ID] = c
	u.st.track(c.ID)
	return c
}

// Account returns the current stored state of an account.
func (u *FakeUoW) Account(id uuid.UUID) (dto.AccountRead, bool) {
	u.lock()
	defer u.unlock()
	a, ok := u.st.accounts[id]
	return a, ok
}

type fakeAccountRepo struct{ u *FakeUoW }

func (r *fakeAccountRepo) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	r.u.lock()
	defer r.u.unlock()

	for _, a := range r.u.st.accounts {
		if a.Number == create.Number {
			return nil, domain.ErrAccountNumberTaken
		}
	}
	now := time.Now().UTC()
	a := dto.AccountRead{
		ID:             uuid.New(),
		Number:         create.Number,
		Name:           create.Name,
		InitialBalance: create.InitialBalance,
		CurrentBalance: create.InitialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.u.st.accounts[a.ID] = a
	r.u.st.track(a.ID)
	return &a, nil
}

func (r *fakeAccountRepo) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	r.u.lock()
	defer r.u.unlock()

	a, ok := r.u.st.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

func (r *fakeAccountRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	// Exclusion comes from the unit-of-work mutex.
	return r.Get(ctx, id)
}

func (r *fakeAccountRepo) List(ctx context.Context) ([]*dto.AccountRead, error) {
	r.u.lock()
	defer r.u.unlock()

	out := make([]*dto.AccountRead, 0, len(r.u.st.accounts))
	for _, a := range r.u.st.accounts {
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.u.st.order[out[i].ID] > r.u.st.order[out[j].ID]
	})
	return out, nil
}

func (r *fakeAccountRepo) PartialUpdate(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error {
	r.u.lock()
	defer r.u.unlock()

	a, ok := r.u.st.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if update.Number != nil {
		for otherID, other := range r.u.st.accounts {
			if otherID != id && other.Number == *update.Number {
				return domain.ErrAccountNumberTaken
			}
		}
		a.Number = *update.Number
	}
	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.InitialBalance != nil {
		a.InitialBalance = *update.InitialBalance
		a.CurrentBalance = *update.InitialBalance
	}
	if update.CurrentBalance != nil {
		a.CurrentBalance = *update.CurrentBalance
	}
	a.UpdatedAt = time.Now().UTC()
	r.u.st.accounts[id] = a
	return nil
}

func (r *fakeAccountRepo) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	r.u.lock()
	defer r.u.unlock()

	if err := r.u.Failures.AdjustBalance; err != nil {
		return err
	}
	a, ok := r.u.st.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.CurrentBalance = a.CurrentBalance.Add(delta)
	a.UpdatedAt = time.Now().UTC()
	r.u.st.accounts[id] = a
	return nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.u.lock()
	defer r.u.unlock()

	if _, ok := r.u.st.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.u.st.accounts, id)
	return nil
}

type fakeTransferRepo struct{ u *FakeUoW }

func (r *fakeTransferRepo) Create(ctx context.Context, create dto.TransferCreate) (*dto.TransferRead, error) {
	r.u.lock()
	defer r.u.unlock()

	if err := r.u.Failures.TransferCreate; err != nil {
		return nil, err
	}
	t := dto.TransferRead{
		ID:            uuid.New(),
		FromAccountID: create.FromAccountID,
		ToAccountID:   create.ToAccountID,
		Amount:        create.Amount,
		Description:   create.Description,
		CreatedAt:     time.Now().UTC(),
	}
	r.u.st.transfers[t.ID] = t
	r.u.st.track(t.ID)
	return &t, nil
}

func (r *fakeTransferRepo) Get(ctx context.Context, id uuid.UUID) (*dto.TransferRead, error) {
	r.u.lock()
	defer r.u.unlock()

	t, ok := r.u.st.transfers[id]
	if !ok {
		return nil, domain.ErrTransferNotFound
	}
	return &t, nil
}

func (r *fakeTransferRepo) List(ctx context.Context) ([]*dto.TransferRead, error) {
	r.u.lock()
	defer r.u.unlock()

	out := make([]*dto.TransferRead, 0, len(r.u.st.transfers))
	for _, t := range r.u.st.transfers {
		t := t
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.u.st.order[out[i].ID] > r.u.st.order[out[j].ID]
	})
	return out, nil
}

func (r *fakeTransferRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.u.lock()
	defer r.u.unlock()

	if _, ok := r.u.st.transfers[id]; !ok {
		return domain.ErrTransferNotFound
	}
	delete(r.u.st.transfers, id)
	return nil
}

type fakePaymentRepo struct{ u *FakeUoW }

func (r *fakePaymentRepo) Create(ctx context.Context, create dto.PaymentCreate, amounts domain.PaymentAmounts) (*dto.PaymentRead, error) {
	r.u.lock()
	defer r.u.unlock()

	if err := r.u.Failures.PaymentCreate; err != nil {
		return nil, err
	}
	status := create.Status
	if status == "" {
		status = string(domain.PaymentPending)
	}
	p := dto.PaymentRead{
		ID:          uuid.New(),
		AccountID:   create.AccountID,
		CreditorID:  create.CreditorID,
		Amount:      amounts.Amount,
		GrossAmount: amounts.GrossAmount,
		TaxRate:     amounts.TaxRate,
		TaxAmount:   amounts.TaxAmount,
		NetAmount:   amounts.NetAmount,
		PaymentDate: create.PaymentDate,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	r.u.st.payments[p.ID] = p
	r.u.st.track(p.ID)
	return &p, nil
}

// withRelations fills in the referenced account and creditor when they
// still exist, mirroring the preloads of the gorm repository.
func (r *fakePaymentRepo) withRelations(p dto.PaymentRead) *dto.PaymentRead {
	if a, ok := r.u.st.accounts[p.AccountID]; ok {
		p.Account = &a
	}
	if c, ok := r.u.st.creditors[p.CreditorID]; ok {
		p.Creditor = &c
	}
	return &p
}

func (r *fakePaymentRepo) Get(ctx context.Context, id uuid.UUID) (*dto.PaymentRead, error) {
	r.u.lock()
	defer r.u.unlock()

	p, ok := r.u.st.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return r.withRelations(p), nil
}

func (r *fakePaymentRepo) List(ctx context.Context) ([]*dto.PaymentRead, error) {
	r.u.lock()
	defer r.u.unlock()

	out := make([]*dto.PaymentRead, 0, len(r.u.st.payments))
	for _, p := range r.u.st.payments {
		out = append(out, r.withRelations(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return r.u.st.order[out[i].ID] > r.u.st.order[out[j].ID]
	})
	return out, nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.u.lock()
	defer r.u.unlock()

	if _, ok := r.u.st.payments[id]; !ok {
		return domain.ErrPaymentNotFound
	}
	delete(r.u.st.payments, id)
	return nil
}

type fakeCreditorRepo struct{ u *FakeUoW }

func (r *fakeCreditorRepo) Create(ctx context.Context, create dto.CreditorCreate) (*dto.CreditorRead, error) {
	r.u.lock()
	defer r.u.unlock()

	if create.Document != "" {
		for _, other := range r.u.st.creditors {
			if other.Document == create.Document {
				return nil, domain.ErrCreditorDocumentTaken
			}
		}
	}
	now := time.Now().UTC()
	c := dto.CreditorRead{
		ID:        uuid.New(),
		Name:      create.Name,
		Document:  create.Document,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.u.st.creditors[c.ID] = c
	r.u.st.track(c.ID)
	return &c, nil
}

func (r *fakeCreditorRepo) Get(ctx context.Context, id uuid.UUID) (*dto.CreditorRead, error) {
	r.u.lock()
	defer r.u.unlock()

	c, ok := r.u.st.creditors[id]
	if !ok {
		return nil, domain.ErrCreditorNotFound
	}
	return &c, nil
}

func (r *fakeCreditorRepo) List(ctx context.Context) ([]*dto.CreditorRead, error) {
	r.u.lock()
	defer r.u.unlock()

	out := make([]*dto.CreditorRead, 0, len(r.u.st.creditors))
	for _, c := range r.u.st.creditors {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.u.st.order[out[i].ID] > r.u.st.order[out[j].ID]
	})
	return out, nil
}

func (r *fakeCreditorRepo) Update(ctx context.Context, id uuid.UUID, update dto.CreditorUpdate) error {
	r.u.lock()
	defer r.u.unlock()

	c, ok := r.u.st.creditors[id]
	if !ok {
		return domain.ErrCreditorNotFound
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Document != nil {
		c.Document = *update.Document
	}
	c.UpdatedAt = time.Now().UTC()
	r.u.st.creditors[id] = c
	return nil
}

func (r *fakeCreditorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.u.lock()
	defer r.u.unlock()

	if _, ok := r.u.st.creditors[id]; !ok {
		return domain.ErrCreditorNotFound
	}
	delete(r.u.st.creditors, id)
	return nil
}

// NewTestLogger returns a logger that discards output.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MakeRequestWithApp performs a JSON request against a Fiber app in
// test mode and returns the response.
func MakeRequestWithApp(app *fiber.App, method, path, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}
