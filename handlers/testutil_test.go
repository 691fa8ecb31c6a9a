package handlers

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/Xjua-nes/Juanes-ikernell/database"
	"github.com/Xjua-nes/Juanes-ikernell/middleware"
	"github.com/Xjua-nes/Juanes-ikernell/models"
)

func TestMain(m *testing.M) {
	middleware.InitJWT()
	os.Exit(m.Run())
}

// In-memory fakes standing in for the database package. They copy records
// on the way in and out so a handler mutation only sticks after Update,
// the same as a real store.

type fakeWorkerStore struct {
	mu      sync.Mutex
	nextID  int64
	workers map[int64]models.Worker
	// role id -> role name, for the leader listing
	roleNames map[int64]string
}

func newFakeWorkerStore() *fakeWorkerStore {
	return &fakeWorkerStore{
		nextID:    1,
		workers:   make(map[int64]models.Worker),
		roleNames: make(map[int64]string),
	}
}

func (s *fakeWorkerStore) Create(ctx context.Context, w *models.Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.workers {
		if existing.Email == w.Email {
			return database.ErrDuplicateEmail
		}
		if existing.Identification == w.Identification {
			return database.ErrDuplicateIdentification
		}
	}
	w.ID = s.nextID
	s.nextID++
	s.workers[w.ID] = *w
	return nil
}

func (s *fakeWorkerStore) Get(ctx context.Context, id int64) (*models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workers[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &w, nil
}

func (s *fakeWorkerStore) List(ctx context.Context) ([]models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Worker, 0, len(s.workers))
	for _, w := range s.workers {
		out = append(out, w)
	}
	return out, nil
}

func (s *fakeWorkerStore) ListByActive(ctx context.Context, active bool) ([]models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Worker
	for _, w := range s.workers {
		if w.Active == active {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *fakeWorkerStore) ListLeaders(ctx context.Context, roleName string) ([]models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Worker
	for _, w := range s.workers {
		if s.roleNames[w.RoleID] == roleName && w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *fakeWorkerStore) FindByEmail(ctx context.Context, email string) (*models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.workers {
		if w.Email == email {
			w := w
			return &w, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeWorkerStore) FindByResetToken(ctx context.Context, token string) (*models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.workers {
		if w.ResetToken != nil && *w.ResetToken == token {
			w := w
			return &w, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeWorkerStore) Update(ctx context.Context, w *models.Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workers[w.ID]; !ok {
		return database.ErrNotFound
	}
	s.workers[w.ID] = *w
	return nil
}

func (s *fakeWorkerStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workers[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.workers, id)
	return nil
}

type fakeRoleStore struct {
	mu     sync.Mutex
	nextID int64
	roles  map[int64]models.Role
}

func newFakeRoleStore(names ...string) *fakeRoleStore {
	s := &fakeRoleStore{nextID: 1, roles: make(map[int64]models.Role)}
	for _, name := range names {
		s.roles[s.nextID] = models.Role{ID: s.nextID, Name: name}
		s.nextID++
	}
	return s
}

func (s *fakeRoleStore) Create(ctx context.Context, r *models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.roles {
		if existing.Name == r.Name {
			return database.ErrDuplicateRoleName
		}
	}
	r.ID = s.nextID
	s.nextID++
	s.roles[r.ID] = *r
	return nil
}

func (s *fakeRoleStore) Get(ctx context.Context, id int64) (*models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.roles[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &r, nil
}

func (s *fakeRoleStore) List(ctx context.Context) ([]models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeRoleStore) Update(ctx context.Context, r *models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[r.ID]; !ok {
		return database.ErrNotFound
	}
	for id, existing := range s.roles {
		if id != r.ID && existing.Name == r.Name {
			return database.ErrDuplicateRoleName
		}
	}
	s.roles[r.ID] = *r
	return nil
}

func (s *fakeRoleStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.roles, id)
	return nil
}

type fakeProjectStore struct {
	mu       sync.Mutex
	nextID   int64
	projects map[int64]models.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{nextID: 1, projects: make(map[int64]models.Project)}
}

func (s *fakeProjectStore) Create(ctx context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.projects[p.ID] = *p
	return nil
}

func (s *fakeProjectStore) Get(ctx context.Context, id int64) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &p, nil
}

func (s *fakeProjectStore) List(ctx context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeProjectStore) Update(ctx context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; !ok {
		return database.ErrNotFound
	}
	s.projects[p.ID] = *p
	return nil
}

func (s *fakeProjectStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

type fakeStageStore struct {
	mu     sync.Mutex
	nextID int64
	stages map[int64]models.Stage
}

func newFakeStageStore() *fakeStageStore {
	return &fakeStageStore{nextID: 1, stages: make(map[int64]models.Stage)}
}

func (s *fakeStageStore) Create(ctx context.Context, st *models.Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.ID = s.nextID
	s.nextID++
	s.stages[st.ID] = *st
	return nil
}

func (s *fakeStageStore) Get(ctx context.Context, id int64) (*models.Stage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stages[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &st, nil
}

func (s *fakeStageStore) List(ctx context.Context) ([]models.Stage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Stage, 0, len(s.stages))
	for _, st := range s.stages {
		out = append(out, st)
	}
	return out, nil
}

func (s *fakeStageStore) ListByProject(ctx context.Context, projectID int64) ([]models.Stage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Stage
	for _, st := range s.stages {
		if st.ProjectID == projectID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *fakeStageStore) Update(ctx context.Context, st *models.Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stages[st.ID]; !ok {
		return database.ErrNotFound
	}
	s.stages[st.ID] = *st
	return nil
}

func (s *fakeStageStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stages[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.stages, id)
	return nil
}

type fakeActivityStore struct {
	mu         sync.Mutex
	nextID     int64
	activities map[int64]models.Activity
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{nextID: 1, activities: make(map[int64]models.Activity)}
}

func (s *fakeActivityStore) Create(ctx context.Context, a *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextID
	s.nextID++
	s.activities[a.ID] = *a
	return nil
}

func (s *fakeActivityStore) Get(ctx context.Context, id int64) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.activities[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &a, nil
}

func (s *fakeActivityStore) List(ctx context.Context) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeActivityStore) ListByStage(ctx context.Context, stageID int64) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Activity
	for _, a := range s.activities {
		if a.StageID == stageID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeActivityStore) ListByDeveloper(ctx context.Context, developerID int64) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Activity
	for _, a := range s.activities {
		if a.DeveloperID == developerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeActivityStore) Update(ctx context.Context, a *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[a.ID]; !ok {
		return database.ErrNotFound
	}
	s.activities[a.ID] = *a
	return nil
}

func (s *fakeActivityStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.activities, id)
	return nil
}

// fakeAssignmentStore rejects a write that would leave two active
// assignments for the same (project, developer) pair, under the same lock
// that applies the write. That mirrors the partial unique index the real
// store relies on.
type fakeAssignmentStore struct {
	mu          sync.Mutex
	nextID      int64
	assignments map[int64]models.Assignment
}

func newFakeAssignmentStore() *fakeAssignmentStore {
	return &fakeAssignmentStore{nextID: 1, assignments: make(map[int64]models.Assignment)}
}

func (s *fakeAssignmentStore) activePairTaken(a *models.Assignment) bool {
	if !a.Active {
		return false
	}
	for id, existing := range s.assignments {
		if id == a.ID {
			continue
		}
		if existing.Active && existing.ProjectID == a.ProjectID && existing.DeveloperID == a.DeveloperID {
			return true
		}
	}
	return false
}

func (s *fakeAssignmentStore) Create(ctx context.Context, a *models.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activePairTaken(a) {
		return database.ErrActiveAssignmentExists
	}
	a.ID = s.nextID
	s.nextID++
	s.assignments[a.ID] = *a
	return nil
}

func (s *fakeAssignmentStore) Get(ctx context.Context, id int64) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assignments[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &a, nil
}

func (s *fakeAssignmentStore) List(ctx context.Context) ([]models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeAssignmentStore) ListByProject(ctx context.Context, projectID int64) ([]models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Assignment
	for _, a := range s.assignments {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeAssignmentStore) ListByDeveloper(ctx context.Context, developerID int64) ([]models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Assignment
	for _, a := range s.assignments {
		if a.DeveloperID == developerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeAssignmentStore) Update(ctx context.Context, a *models.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assignments[a.ID]; !ok {
		return database.ErrNotFound
	}
	if s.activePairTaken(a) {
		return database.ErrActiveAssignmentExists
	}
	s.assignments[a.ID] = *a
	return nil
}

func (s *fakeAssignmentStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assignments[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.assignments, id)
	return nil
}

type fakeErrorReportStore struct {
	mu      sync.Mutex
	nextID  int64
	reports map[int64]models.ErrorReport
}

func newFakeErrorReportStore() *fakeErrorReportStore {
	return &fakeErrorReportStore{nextID: 1, reports: make(map[int64]models.ErrorReport)}
}

func (s *fakeErrorReportStore) Create(ctx context.Context, e *models.ErrorReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID
	s.nextID++
	s.reports[e.ID] = *e
	return nil
}

func (s *fakeErrorReportStore) Get(ctx context.Context, id int64) (*models.ErrorReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.reports[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &e, nil
}

func (s *fakeErrorReportStore) List(ctx context.Context) ([]models.ErrorReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ErrorReport, 0, len(s.reports))
	for _, e := range s.reports {
		out = append(out, e)
	}
	return out, nil
}

func (s *fakeErrorReportStore) ListByDeveloper(ctx context.Context, developerID int64) ([]models.ErrorReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ErrorReport
	for _, e := range s.reports {
		if e.DeveloperID == developerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeErrorReportStore) Update(ctx context.Context, e *models.ErrorReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[e.ID]; !ok {
		return database.ErrNotFound
	}
	s.reports[e.ID] = *e
	return nil
}

func (s *fakeErrorReportStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.reports, id)
	return nil
}

type fakeInterruptionStore struct {
	mu            sync.Mutex
	nextID        int64
	interruptions map[int64]models.Interruption
}

func newFakeInterruptionStore() *fakeInterruptionStore {
	return &fakeInterruptionStore{nextID: 1, interruptions: make(map[int64]models.Interruption)}
}

func (s *fakeInterruptionStore) Create(ctx context.Context, i *models.Interruption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i.ID = s.nextID
	s.nextID++
	s.interruptions[i.ID] = *i
	return nil
}

func (s *fakeInterruptionStore) Get(ctx context.Context, id int64) (*models.Interruption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.interruptions[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &i, nil
}

func (s *fakeInterruptionStore) List(ctx context.Context) ([]models.Interruption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Interruption, 0, len(s.interruptions))
	for _, i := range s.interruptions {
		out = append(out, i)
	}
	return out, nil
}

func (s *fakeInterruptionStore) ListByDeveloper(ctx context.Context, developerID int64) ([]models.Interruption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Interruption
	for _, i := range s.interruptions {
		if i.DeveloperID == developerID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (s *fakeInterruptionStore) Update(ctx context.Context, i *models.Interruption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.interruptions[i.ID]; !ok {
		return database.ErrNotFound
	}
	s.interruptions[i.ID] = *i
	return nil
}

func (s *fakeInterruptionStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.interruptions[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.interruptions, id)
	return nil
}

type fakePerformanceReportStore struct {
	mu      sync.Mutex
	nextID  int64
	reports map[int64]models.PerformanceReport
}

func newFakePerformanceReportStore() *fakePerformanceReportStore {
	return &fakePerformanceReportStore{nextID: 1, reports: make(map[int64]models.PerformanceReport)}
}

func (s *fakePerformanceReportStore) Create(ctx context.Context, r *models.PerformanceReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	s.reports[r.ID] = *r
	return nil
}

func (s *fakePerformanceReportStore) Get(ctx context.Context, id int64) (*models.PerformanceReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &r, nil
}

func (s *fakePerformanceReportStore) List(ctx context.Context) ([]models.PerformanceReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PerformanceReport, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	return out, nil
}

func (s *fakePerformanceReportStore) ListByWorker(ctx context.Context, workerID int64) ([]models.PerformanceReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.PerformanceReport
	for _, r := range s.reports {
		if r.WorkerID == workerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakePerformanceReportStore) ListByProject(ctx context.Context, projectID int64) ([]models.PerformanceReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.PerformanceReport
	for _, r := range s.reports {
		if r.ProjectID != nil && *r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakePerformanceReportStore) Update(ctx context.Context, r *models.PerformanceReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[r.ID]; !ok {
		return database.ErrNotFound
	}
	s.reports[r.ID] = *r
	return nil
}

func (s *fakePerformanceReportStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.reports, id)
	return nil
}

type sentMail struct {
	workerID      int64
	email         string
	plainPassword string
	resetToken    string
}

// fakeNotifier records outbound mail.
type fakeNotifier struct {
	mu            sync.Mutex
	registrations []sentMail
	resets        []sentMail
}

func (n *fakeNotifier) SendRegistrationEmail(worker *models.Worker, plainPassword string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.registrations = append(n.registrations, sentMail{
		workerID:      worker.ID,
		email:         worker.Email,
		plainPassword: plainPassword,
	})
}

func (n *fakeNotifier) SendPasswordResetEmail(worker *models.Worker) {
	n.mu.Lock()
	defer n.mu.Unlock()
	mail := sentMail{workerID: worker.ID, email: worker.Email}
	if worker.ResetToken != nil {
		mail.resetToken = *worker.ResetToken
	}
	n.resets = append(n.resets, mail)
}

func (n *fakeNotifier) registrationCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.registrations)
}
