package impl

// Hand-written in-memory fakes for the repository and service interfaces.
// Each test configures only the behavior it needs.

import (
	"context"
	"strings"
	"time"

	"insurai/internal/domain/entity"
	"insurai/internal/domain/repository"
	"insurai/internal/domain/service"

	"github.com/google/uuid"
)

// --- user repository ---

type fakeUserRepo struct {
	users     map[string]*entity.User // keyed by email
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.ID = uuid.New()
	f.users[user.Email] = user

	return nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

// --- state repository ---

type fakeStateRepo struct {
	states map[uint]*entity.State
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{states: map[uint]*entity.State{
		1: {ID: 1, Name: "Abu Dhabi", Code: "AD"},
		2: {ID: 2, Name: "Dubai", Code: "DU"},
	}}
}

func (f *fakeStateRepo) FindByID(_ context.Context, id uint) (*entity.State, error) {
	if s, ok := f.states[id]; ok {
		return s, nil
	}

	return nil, repository.ErrStateNotFound
}

func (f *fakeStateRepo) FindAll(_ context.Context) ([]*entity.State, error) {
	out := make([]*entity.State, 0, len(f.states))
	for id := uint(1); id <= uint(len(f.states)); id++ {
		out = append(out, f.states[id])
	}

	return out, nil
}

// --- provider repository ---

type fakeProviderRepo struct {
	providers map[string]*entity.Provider // keyed by exact name
	createErr error
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: map[string]*entity.Provider{}}
}

func (f *fakeProviderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Provider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, repository.ErrProviderNotFound
}

func (f *fakeProviderRepo) FindByName(_ context.Context, name string) (*entity.Provider, error) {
	if p, ok := f.providers[name]; ok {
		return p, nil
	}

	return nil, repository.ErrProviderNotFound
}

func (f *fakeProviderRepo) Create(_ context.Context, provider *entity.Provider) error {
	if f.createErr != nil {
		return f.createErr
	}
	provider.ID = uuid.New()
	f.providers[provider.Name] = provider

	return nil
}

func (f *fakeProviderRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.providers)), nil
}

// --- plan repository ---

type fakePlanRepo struct {
	plans     []*entity.Plan
	createErr error
	updateErr error

	searchFilter *repository.PlanFilter // Last filter seen by Search.
	lastPatch    *repository.PlanPatch
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{}
}

func (f *fakePlanRepo) Search(_ context.Context, filter repository.PlanFilter) ([]*entity.Plan, int64, error) {
	f.searchFilter = &filter

	var matched []*entity.Plan
	for _, p := range f.plans {
		if !p.IsActive {
			continue
		}
		if filter.StateID != 0 && p.StateID != filter.StateID {
			continue
		}
		if filter.PlanType != "" && p.Type.String() != filter.PlanType {
			continue
		}
		matched = append(matched, p)
	}

	total := int64(len(matched))
	if filter.Offset < len(matched) {
		matched = matched[filter.Offset:]
	} else {
		matched = nil
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, total, nil
}

func (f *fakePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Plan, error) {
	for _, p := range f.plans {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, repository.ErrPlanNotFound
}

func (f *fakePlanRepo) FindAllForAdmin(_ context.Context, filter repository.AdminPlanFilter) ([]*entity.Plan, int64, error) {
	var matched []*entity.Plan
	for _, p := range f.plans {
		if filter.StateID != 0 && p.StateID != filter.StateID {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		matched = append(matched, p)
	}

	total := int64(len(matched))
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, total, nil
}

func (f *fakePlanRepo) CreateBatch(_ context.Context, plans []*entity.Plan) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, p := range plans {
		p.ID = uuid.New()
	}
	f.plans = append(f.plans, plans...)

	return nil
}

func (f *fakePlanRepo) Update(_ context.Context, id uuid.UUID, patch repository.PlanPatch) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.lastPatch = &patch
	for _, p := range f.plans {
		if p.ID == id {
			if patch.PlanName != nil {
				p.Name = *patch.PlanName
			}
			if patch.MonthlyCost != nil {
				p.MonthlyCost = patch.MonthlyCost
			}
			if patch.IsActive != nil {
				p.IsActive = *patch.IsActive
			}

			return nil
		}
	}

	return repository.ErrPlanNotFound
}

func (f *fakePlanRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for _, p := range f.plans {
		if p.ID == id {
			p.IsActive = false

			return nil
		}
	}

	return repository.ErrPlanNotFound
}

func (f *fakePlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range f.plans {
		if p.ID == id {
			f.plans = append(f.plans[:i], f.plans[i+1:]...)

			return nil
		}
	}

	return repository.ErrPlanNotFound
}

func (f *fakePlanRepo) DeleteByProviderAndState(_ context.Context, providerID uuid.UUID, stateID uint) (int64, error) {
	var kept []*entity.Plan
	var deleted int64
	for _, p := range f.plans {
		if p.ProviderID == providerID && p.StateID == stateID {
			deleted++

			continue
		}
		kept = append(kept, p)
	}
	f.plans = kept

	return deleted, nil
}

func (f *fakePlanRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.plans)), nil
}

func (f *fakePlanRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, p := range f.plans {
		if p.IsActive {
			n++
		}
	}

	return n, nil
}

func (f *fakePlanRepo) CountByType(_ context.Context) ([]repository.PlanTypeCount, error) {
	counts := map[string]int64{}
	for _, p := range f.plans {
		if p.IsActive {
			counts[p.Type.String()]++
		}
	}
	out := make([]repository.PlanTypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, repository.PlanTypeCount{PlanType: t, Count: n})
	}

	return out, nil
}

func (f *fakePlanRepo) CountByState(_ context.Context) ([]repository.PlanStateCount, error) {
	counts := map[uint]int64{}
	for _, p := range f.plans {
		if p.IsActive {
			counts[p.StateID]++
		}
	}
	out := make([]repository.PlanStateCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, repository.PlanStateCount{StateID: id, Count: n})
	}

	return out, nil
}

// --- chat repository ---

type fakeChatRepo struct {
	entries   []*entity.ChatEntry
	appendErr error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{}
}

func (f *fakeChatRepo) Append(_ context.Context, entry *entity.ChatEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, entry)

	return nil
}

func (f *fakeChatRepo) FindRecent(_ context.Context, userID uuid.UUID, sessionID string, limit int) ([]*entity.ChatEntry, error) {
	matched := f.sessionEntries(userID, sessionID)
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}

	return matched, nil
}

func (f *fakeChatRepo) ListSessions(_ context.Context, userID uuid.UUID) ([]repository.ChatSessionSummary, error) {
	counts := map[string]int64{}
	for _, e := range f.entries {
		if e.UserID == userID {
			counts[e.SessionID]++
		}
	}
	out := make([]repository.ChatSessionSummary, 0, len(counts))
	for id, n := range counts {
		out = append(out, repository.ChatSessionSummary{SessionID: id, MessageCount: n})
	}

	return out, nil
}

func (f *fakeChatRepo) DeleteSession(_ context.Context, userID uuid.UUID, sessionID string) (int64, error) {
	var kept []*entity.ChatEntry
	var deleted int64
	for _, e := range f.entries {
		if e.UserID == userID && e.SessionID == sessionID {
			deleted++

			continue
		}
		kept = append(kept, e)
	}
	f.entries = kept

	return deleted, nil
}

func (f *fakeChatRepo) sessionEntries(userID uuid.UUID, sessionID string) []*entity.ChatEntry {
	var matched []*entity.ChatEntry
	for _, e := range f.entries {
		if e.UserID == userID && (sessionID == "" || e.SessionID == sessionID) {
			matched = append(matched, e)
		}
	}

	return matched
}

// --- transaction manager ---

type fakeTxManager struct {
	providerRepo *fakeProviderRepo
	planRepo     *fakePlanRepo
	executeErr   error
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if f.executeErr != nil {
		return f.executeErr
	}

	return fn(f)
}

func (f *fakeTxManager) NewProviderRepository() repository.ProviderRepository {
	return f.providerRepo
}

func (f *fakeTxManager) NewPlanRepository() repository.PlanRepository {
	return f.planRepo
}

// --- password hasher ---

type fakeHasher struct {
	strengthErr error
	hashErr     error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (f *fakeHasher) ValidatePasswordStrength(_ string) error {
	return f.strengthErr
}

// --- token service ---

type fakeTokens struct {
	generateErr error
}

func (f *fakeTokens) GenerateToken(userID uuid.UUID, email string, _ entity.Role) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}

	return "token-" + email + "-" + userID.String(), nil
}

func (f *fakeTokens) ValidateToken(tokenString string) (*service.Claims, error) {
	if !strings.HasPrefix(tokenString, "token-") {
		return nil, repository.ErrUserNotFound
	}

	return &service.Claims{}, nil
}

// --- advisor client ---

type fakeAdvisor struct {
	extractFn func(fileName, text string, tables []entity.DocumentTable) (*entity.PlanExtraction, error)
	chatFn    func(message string, history []entity.ChatTurn) (string, error)

	lastHistory []entity.ChatTurn
}

func (f *fakeAdvisor) ExtractPlans(_ context.Context, fileName string, text string, tables []entity.DocumentTable) (*entity.PlanExtraction, error) {
	return f.extractFn(fileName, text, tables)
}

func (f *fakeAdvisor) Chat(_ context.Context, message string, history []entity.ChatTurn) (string, error) {
	f.lastHistory = history

	return f.chatFn(message, history)
}

// --- document extractor ---

type fakeExtractor struct {
	contents map[string]*entity.DocumentContent // keyed by original name
	failures map[string]error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string, originalName string) (*entity.DocumentContent, error) {
	if err, ok := f.failures[originalName]; ok {
		return nil, err
	}
	if c, ok := f.contents[originalName]; ok {
		return c, nil
	}

	return &entity.DocumentContent{Text: "content of " + originalName}, nil
}
