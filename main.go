// File: careloop/main.go
package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"careloop/api"
	"careloop/config"
	"careloop/nav"
	"careloop/poller"
	"careloop/session"
	"careloop/ui"
	"careloop/utils"
	"careloop/workflows"

	"github.com/go-playground/validator/v10"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client := api.NewClient(config.AppConfig.APIBaseURL, config.AppConfig.HTTPTimeout, logger)

	store, err := session.NewFileStore(config.AppConfig.StateDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open state directory: %v", err)
	}
	sessions := session.NewManager(store, logger)

	stdin := bufio.NewReader(os.Stdin)
	surface := ui.NewTerminal(os.Stdout, stdin)
	navigator := nav.New(surface, logger)
	refresher := poller.New(config.AppConfig.PollInterval, logger)
	validate := validator.New()

	// shared transient state.
	state := workflows.NewState()
	uploads := workflows.NewUploads()

	// services.
	authService := &workflows.DefaultAuthService{
		Users:      client,
		Caregivers: client,
		Session:    sessions,
		Nav:        navigator,
		UI:         surface,
		Poller:     refresher,
		Uploads:    uploads,
		Validate:   validate,
		Log:        logger,
	}
	browseService := &workflows.DefaultBrowseService{
		Caregivers: client,
		Session:    sessions,
		State:      state,
		Nav:        navigator,
		UI:         surface,
		Log:        logger,
	}
	profileService := &workflows.DefaultProfileService{
		Users:      client,
		Caregivers: client,
		Bookings:   client,
		Reviews:    client,
		Training:   client,
		Session:    sessions,
		State:      state,
		Nav:        navigator,
		UI:         surface,
		Validate:   validate,
		Log:        logger,
	}
	bookingService := &workflows.DefaultBookingService{
		Bookings: client,
		Jobs:     client,
		Session:  sessions,
		State:    state,
		Profile:  profileService,
		Nav:      navigator,
		UI:       surface,
		Validate: validate,
		Log:      logger,
	}
	ratingService := &workflows.DefaultRatingService{
		Reviews: client,
		Session: sessions,
		State:   state,
		Profile: profileService,
		UI:      surface,
		Log:     logger,
	}
	dashboardService := &workflows.DefaultDashboardService{
		Jobs:       client,
		Caregivers: client,
		Session:    sessions,
		Nav:        navigator,
		UI:         surface,
		Poller:     refresher,
		Log:        logger,
	}
	trainingService := &workflows.DefaultTrainingService{
		Training: client,
		Session:  sessions,
		UI:       surface,
		Log:      logger,
	}
	chatService := &workflows.DefaultChatService{
		Messages:       client,
		Jobs:           client,
		Session:        sessions,
		State:          state,
		UI:             surface,
		Log:            logger,
		AutoReply:      config.AppConfig.DemoAutoReply,
		AutoReplyDelay: config.AppConfig.DemoAutoReplyDelay,
		Responder:      workflows.CannedResponder{},
	}
	ctx := context.Background()

	// page refresh hooks.
	navigator.Register(nav.PageBrowseCaregivers, func() { browseService.RefreshListing(ctx) })
	navigator.Register(nav.PageCaregiverProfile, browseService.RenderSelectedProfile)
	navigator.Register(nav.PageUserProfile, func() { profileService.RefreshUserProfile(ctx) })
	navigator.Register(nav.PageBookingPayment, func() { bookingService.UpdatePrice(1, false) })
	navigator.Register(nav.PageCaregiverDashboard, func() { dashboardService.EnterDashboard(ctx) })
	navigator.RegisterLeave(nav.PageCaregiverDashboard, dashboardService.LeaveDashboard)

	// route to the landing page for whichever session survived a restart.
	switch sessions.Restore() {
	case session.KindUser:
		navigator.Navigate(nav.PageBrowseCaregivers)
	case session.KindCaregiver:
		navigator.Navigate(nav.PageCaregiverDashboard)
	default:
		navigator.Navigate(nav.PageHome)
	}

	// SIGINT/SIGTERM end the run the same way EOF on stdin does.
	done := make(chan struct{})
	go func() {
		commandLoop(ctx, stdin, os.Stdout, &services{
			Auth:      authService,
			Browse:    browseService,
			Profile:   profileService,
			Booking:   bookingService,
			Rating:    ratingService,
			Dashboard: dashboardService,
			Training:  trainingService,
			Chat:      chatService,
			Uploads:   uploads,
			Nav:       navigator,
		})
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-done:
	}

	refresher.Disarm()
	logger.Info("shutting down")
	_ = logger.Sync()
}
