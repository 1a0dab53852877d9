package workflows

import (
	"context"
	"fmt"
	"sync"

	"careloop/models"
)

// surfaceRecorder captures everything a workflow shows so tests can assert
// on user-visible behavior without a real front end.
type surfaceRecorder struct {
	pages         []string
	alerts        []string
	confirms      []string
	confirmAnswer bool
	successTitles []string
	returnPages   []string
	regions       map[string][]string
	regionErrors  map[string]string
	openedModals  []string
	closedModals  []string
}

func newSurfaceRecorder() *surfaceRecorder {
	return &surfaceRecorder{
		confirmAnswer: true,
		regions:       make(map[string][]string),
		regionErrors:  make(map[string]string),
	}
}

func (r *surfaceRecorder) ShowPage(page string) { r.pages = append(r.pages, page) }
func (r *surfaceRecorder) ScrollToTop()         {}
func (r *surfaceRecorder) Alert(message string) { r.alerts = append(r.alerts, message) }
func (r *surfaceRecorder) Confirm(prompt string) bool {
	r.confirms = append(r.confirms, prompt)
	return r.confirmAnswer
}
func (r *surfaceRecorder) ShowSuccess(title, _, returnPage string) {
	r.successTitles = append(r.successTitles, title)
	r.returnPages = append(r.returnPages, returnPage)
}
func (r *surfaceRecorder) RenderList(region string, lines []string) { r.regions[region] = lines }
func (r *surfaceRecorder) RenderError(region, message string)       { r.regionErrors[region] = message }
func (r *surfaceRecorder) OpenModal(id string)                      { r.openedModals = append(r.openedModals, id) }
func (r *surfaceRecorder) CloseModal(id string)                     { r.closedModals = append(r.closedModals, id) }

// fakeUserAPI implements api.UserAPI.
type fakeUserAPI struct {
	loginCalls int
	loginErr   error
	user       *models.User
	updated    *models.UserProfileUpdate
}

func (f *fakeUserAPI) LoginUser(_ context.Context, email, password string) (*models.User, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeUserAPI) RegisterUser(_ context.Context, reg models.UserRegistration) (*models.User, error) {
	return &models.User{ID: 3, Name: reg.Name, Email: reg.Email, Location: reg.Location, Avatar: "S"}, nil
}

func (f *fakeUserAPI) GetUser(_ context.Context, id int) (*models.User, error) {
	if f.user != nil {
		return f.user, nil
	}
	return nil, fmt.Errorf("user %d not found", id)
}

func (f *fakeUserAPI) UpdateUser(_ context.Context, _ int, upd models.UserProfileUpdate) error {
	f.updated = &upd
	return nil
}

// fakeCaregiverAPI implements api.CaregiverAPI.
type fakeCaregiverAPI struct {
	loginErr      int // non-zero means fail
	registerCalls int
	lastReg       models.CaregiverRegistration
	caregiver     *models.Caregiver
	getCalls      int
	cards         []models.CaregiverCard
	listErr       error
	lastCareType  string
}

func (f *fakeCaregiverAPI) LoginCaregiver(_ context.Context, email, password string) (*models.Caregiver, error) {
	if f.loginErr != 0 {
		return nil, fmt.Errorf("login failed with status %d", f.loginErr)
	}
	return f.caregiver, nil
}

func (f *fakeCaregiverAPI) RegisterCaregiver(_ context.Context, reg models.CaregiverRegistration) (int, error) {
	f.registerCalls++
	f.lastReg = reg
	return f.caregiver.ID, nil
}

func (f *fakeCaregiverAPI) GetCaregiver(_ context.Context, id int) (*models.Caregiver, error) {
	f.getCalls++
	if f.caregiver == nil {
		return nil, fmt.Errorf("caregiver %d not found", id)
	}
	return f.caregiver, nil
}

func (f *fakeCaregiverAPI) ListCaregivers(_ context.Context, careType string) ([]models.CaregiverCard, error) {
	f.lastCareType = careType
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cards, nil
}

// fakeBookingAPI implements api.BookingAPI.
type fakeBookingAPI struct {
	createCalls  int
	lastCreate   models.BookingCreate
	createErr    error
	bookings     []models.Booking
	confirmed    []int
	patchedState map[int]models.BookingStatus
}

func (f *fakeBookingAPI) CreateBooking(_ context.Context, req models.BookingCreate) (*models.Booking, error) {
	f.createCalls++
	f.lastCreate = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Booking{
		ID:          42,
		UserID:      req.UserID,
		CaregiverID: req.CaregiverID,
		Date:        req.BookingDate,
		Hours:       req.Hours,
		Total:       req.TotalAmount,
		Status:      models.BookingInProgress,
	}, nil
}

func (f *fakeBookingAPI) UserBookings(_ context.Context, _ int) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingAPI) ConfirmCompletion(_ context.Context, bookingID int) error {
	f.confirmed = append(f.confirmed, bookingID)
	return nil
}

func (f *fakeBookingAPI) SetStatus(_ context.Context, bookingID int, status models.BookingStatus) error {
	if f.patchedState == nil {
		f.patchedState = make(map[int]models.BookingStatus)
	}
	f.patchedState[bookingID] = status
	return nil
}

// fakeJobAPI implements api.JobAPI.
type fakeJobAPI struct {
	createCalls  int
	lastCreate   models.JobCreate
	createErr    error
	requests     []models.JobRequest
	accepted     []models.AcceptedJob
	acceptedIDs  []int
	completedIDs []int
	settlement   *models.JobSettlement
	job          *models.JobRequest
}

func (f *fakeJobAPI) CreateJobRequest(_ context.Context, req models.JobCreate) error {
	f.createCalls++
	f.lastCreate = req
	return f.createErr
}

func (f *fakeJobAPI) JobsForCaregiver(_ context.Context, _ int) ([]models.JobRequest, error) {
	return f.requests, nil
}

func (f *fakeJobAPI) AcceptedJobs(_ context.Context, _ int) ([]models.AcceptedJob, error) {
	return f.accepted, nil
}

func (f *fakeJobAPI) GetJob(_ context.Context, jobID int) (*models.JobRequest, error) {
	if f.job != nil {
		return f.job, nil
	}
	return nil, fmt.Errorf("job %d not found", jobID)
}

func (f *fakeJobAPI) AcceptJob(_ context.Context, jobID, _ int) error {
	f.acceptedIDs = append(f.acceptedIDs, jobID)
	return nil
}

func (f *fakeJobAPI) CompleteJob(_ context.Context, acceptedJobID int) (*models.JobSettlement, error) {
	f.completedIDs = append(f.completedIDs, acceptedJobID)
	return f.settlement, nil
}

// fakeReviewAPI implements api.ReviewAPI.
type fakeReviewAPI struct {
	submitted []models.ReviewCreate
	reviews   []models.Review
}

func (f *fakeReviewAPI) SubmitReview(_ context.Context, req models.ReviewCreate) error {
	f.submitted = append(f.submitted, req)
	return nil
}

func (f *fakeReviewAPI) CaregiverReviews(_ context.Context, _ int) ([]models.Review, error) {
	return f.reviews, nil
}

// fakeMessageAPI implements api.MessageAPI. The auto-reply path calls it
// from a timer goroutine, so access is guarded.
type fakeMessageAPI struct {
	mu        sync.Mutex
	threadID  int
	threadErr error
	messages  []models.Message
	sent      []models.MessageSend
	loadCalls int
}

func (f *fakeMessageAPI) ResolveThread(_ context.Context, _, _ int) (int, error) {
	if f.threadErr != nil {
		return 0, f.threadErr
	}
	return f.threadID, nil
}

func (f *fakeMessageAPI) ThreadMessages(_ context.Context, _ int) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadCalls++
	return f.messages, nil
}

func (f *fakeMessageAPI) SendMessage(_ context.Context, req models.MessageSend) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, req)
	return nil
}

func (f *fakeMessageAPI) sentMessages() []models.MessageSend {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.MessageSend, len(f.sent))
	copy(out, f.sent)
	return out
}

// fakeTrainingAPI implements api.TrainingAPI.
type fakeTrainingAPI struct {
	program     *models.TrainingProgram
	enrollments []models.TrainingEnrollment
	enrolled    []int
}

func (f *fakeTrainingAPI) GetTraining(_ context.Context, id int) (*models.TrainingProgram, error) {
	if f.program == nil {
		return nil, fmt.Errorf("training %d not found", id)
	}
	return f.program, nil
}

func (f *fakeTrainingAPI) CaregiverEnrollments(_ context.Context, _ int) ([]models.TrainingEnrollment, error) {
	return f.enrollments, nil
}

func (f *fakeTrainingAPI) Enroll(_ context.Context, _, trainingID int) error {
	f.enrolled = append(f.enrolled, trainingID)
	return nil
}

// fakeProfileService counts history reloads for services that trigger them.
type fakeProfileService struct {
	historyLoads int
}

func (f *fakeProfileService) ShowUserProfile(context.Context)                        {}
func (f *fakeProfileService) RefreshUserProfile(context.Context)                     {}
func (f *fakeProfileService) SaveUserProfile(context.Context, UserProfileEdit) error { return nil }
func (f *fakeProfileService) LoadBookingHistory(context.Context)                     { f.historyLoads++ }
func (f *fakeProfileService) ShowCaregiverProfile(context.Context)                   {}
