package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"inclusive-jobs/internal/domain/candidate"
	"inclusive-jobs/internal/domain/job"
	"inclusive-jobs/internal/domain/matching"
	"inclusive-jobs/internal/domain/onboarding"
	"inclusive-jobs/internal/domain/user"
	"inclusive-jobs/internal/repository"

	"github.com/google/uuid"
)

type mockCandidateRepo struct {
	byUser   map[uuid.UUID]candidate.Profile
	err      error
	replaced []candidate.Profile
	pages    []uuid.UUID
}

func (m *mockCandidateRepo) GetByUserID(_ context.Context, userID uuid.UUID) (candidate.Profile, error) {
	if m.err != nil {
		return candidate.Profile{}, m.err
	}
	p, ok := m.byUser[userID]
	if !ok {
		return candidate.Profile{}, repository.ErrCandidateNotFound
	}
	return p, nil
}

func (m *mockCandidateRepo) ReplaceProfile(_ context.Context, p candidate.Profile) (candidate.Profile, error) {
	if m.err != nil {
		return candidate.Profile{}, m.err
	}
	cur, ok := m.byUser[p.UserID]
	if !ok {
		return candidate.Profile{}, repository.ErrCandidateNotFound
	}
	p.ID = cur.ID
	m.byUser[p.UserID] = p
	m.replaced = append(m.replaced, p)
	return p, nil
}

func (m *mockCandidateRepo) ListProfilesAfter(_ context.Context, after uuid.UUID, limit int) ([]candidate.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.pages = append(m.pages, after)
	all := make([]candidate.Profile, 0, len(m.byUser))
	for _, p := range m.byUser {
		if bytes.Compare(p.ID[:], after[:]) > 0 {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, k int) bool { return bytes.Compare(all[i].ID[:], all[k].ID[:]) < 0 })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

type mockJobRepo struct {
	items   []job.Posting
	total   int
	err     error
	created []job.Posting
	filter  repository.JobListFilter
}

func (m *mockJobRepo) Create(_ context.Context, p job.Posting) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	p.ID = uuid.New()
	p.IsActive = true
	m.created = append(m.created, p)
	return p, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return job.Posting{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) ListOpen(_ context.Context, f repository.JobListFilter) ([]job.Posting, int, error) {
	m.filter = f
	return m.items, m.total, m.err
}

func (m *mockJobRepo) ListActiveForMatching(_ context.Context, now time.Time) ([]job.Posting, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Posting, 0, len(m.items))
	for _, p := range m.items {
		if p.Open(now) {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockMatchRepo struct {
	mu       sync.Mutex
	replaced map[uuid.UUID][]matching.MatchResult
	rows     []repository.MatchSnapshotRow
	total    int
	filter   repository.SnapshotFilter
	stats    repository.MatchStats
	statsHit int
	onStats  func()
	err      error
}

func (m *mockMatchRepo) ReplaceForCandidate(_ context.Context, candidateID uuid.UUID, _ time.Time, results []matching.MatchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.replaced == nil {
		m.replaced = map[uuid.UUID][]matching.MatchResult{}
	}
	m.replaced[candidateID] = results
	return nil
}

func (m *mockMatchRepo) ListByCandidate(_ context.Context, _ uuid.UUID, f repository.SnapshotFilter) ([]repository.MatchSnapshotRow, int, error) {
	m.filter = f
	return m.rows, m.total, m.err
}

func (m *mockMatchRepo) GetByID(_ context.Context, candidateID, matchID uuid.UUID) (repository.MatchSnapshotRow, error) {
	for _, r := range m.rows {
		if r.ID == matchID && r.CandidateID == candidateID {
			return r, nil
		}
	}
	return repository.MatchSnapshotRow{}, repository.ErrMatchNotFound
}

func (m *mockMatchRepo) Stats(context.Context, uuid.UUID) (repository.MatchStats, error) {
	m.statsHit++
	st := m.stats
	if m.onStats != nil {
		m.onStats()
	}
	return st, m.err
}

type memCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
	return nil
}

type notification struct {
	userID uuid.UUID
	total  int
}

type recordingNotifier struct {
	got []notification
}

func (n *recordingNotifier) MatchesGenerated(userID uuid.UUID, total int, _ time.Time) {
	n.got = append(n.got, notification{userID: userID, total: total})
}

type mockEmployerRepo struct {
	byUser map[uuid.UUID]job.Employer
}

func (m mockEmployerRepo) GetByUserID(_ context.Context, userID uuid.UUID) (job.Employer, error) {
	e, ok := m.byUser[userID]
	if !ok {
		return job.Employer{}, repository.ErrEmployerNotFound
	}
	return e, nil
}

func (m mockEmployerRepo) GetByID(_ context.Context, id uuid.UUID) (job.Employer, error) {
	for _, e := range m.byUser {
		if e.ID == id {
			return e, nil
		}
	}
	return job.Employer{}, repository.ErrEmployerNotFound
}

type mockApplicationRepo struct {
	seen map[[2]uuid.UUID]bool
}

func (m *mockApplicationRepo) Create(_ context.Context, jobID, candidateID uuid.UUID) (repository.Application, error) {
	if m.seen == nil {
		m.seen = map[[2]uuid.UUID]bool{}
	}
	k := [2]uuid.UUID{jobID, candidateID}
	if m.seen[k] {
		return repository.Application{}, repository.ErrAlreadyApplied
	}
	m.seen[k] = true
	return repository.Application{ID: uuid.New(), JobID: jobID, CandidateID: candidateID, Status: "pending"}, nil
}

type memDraftStore struct {
	drafts map[uuid.UUID]onboarding.Draft
	err    error
}

func (s *memDraftStore) Load(_ context.Context, userID uuid.UUID) (onboarding.Draft, bool, error) {
	if s.err != nil {
		return onboarding.Draft{}, false, s.err
	}
	d, ok := s.drafts[userID]
	return d, ok, nil
}

func (s *memDraftStore) Save(_ context.Context, d onboarding.Draft, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	if s.drafts == nil {
		s.drafts = map[uuid.UUID]onboarding.Draft{}
	}
	s.drafts[d.UserID] = d
	return nil
}

func (s *memDraftStore) Delete(_ context.Context, userID uuid.UUID) error {
	delete(s.drafts, userID)
	return nil
}

type memUserRepo struct {
	users map[uuid.UUID]user.User
	accts []user.Account
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[uuid.UUID]user.User{}} }

func (r *memUserRepo) CreateAccount(_ context.Context, a user.Account) error {
	for _, u := range r.users {
		if u.Email == a.User.Email {
			return user.ErrEmailTaken
		}
	}
	r.users[a.User.ID] = a.User
	r.accts = append(r.accts, a)
	return nil
}

func (r *memUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (r *memUserRepo) UpdateUser(_ context.Context, u user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	r.users[u.ID] = u
	return nil
}
