// File: careloop/repl.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"careloop/nav"
	"careloop/workflows"
)

// services bundles everything the command loop drives.
type services struct {
	Auth      workflows.AuthService
	Browse    workflows.BrowseService
	Profile   workflows.ProfileService
	Booking   workflows.BookingService
	Rating    workflows.RatingService
	Dashboard workflows.DashboardService
	Training  workflows.TrainingService
	Chat      workflows.ChatService
	Uploads   *workflows.Uploads
	Nav       *nav.Navigator
}

// commandLoop reads commands from in until EOF or "quit". Errors from the
// workflows have already been shown on the surface, so they are dropped here.
// Pass the same buffered reader the Terminal surface uses so mid-command
// confirmation prompts read from one shared buffer.
func commandLoop(ctx context.Context, in io.Reader, out io.Writer, s *services) {
	reader := bufio.NewReader(in)
	fmt.Fprintln(out, `CareLoop client. Type "help" for commands.`)
	for {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return
		}
		runCommand(ctx, out, s, cmd, args)
	}
}

func runCommand(ctx context.Context, out io.Writer, s *services, cmd string, args []string) {
	switch cmd {
	case "help":
		fmt.Fprint(out, usage)

	case "login-user":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: login-user <email> <password>")
			return
		}
		_ = s.Auth.LoginUser(ctx, workflows.UserCredentials{Email: args[0], Password: args[1]})
	case "signup-user":
		if len(args) < 6 {
			fmt.Fprintln(out, "usage: signup-user <name> <gender> <email> <phone> <location> <password>")
			return
		}
		_ = s.Auth.RegisterUser(ctx, workflows.UserSignup{
			Name: args[0], Gender: args[1], Email: args[2],
			Phone: args[3], Location: args[4], Password: args[5],
		})
	case "login-caregiver":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: login-caregiver <email> <password>")
			return
		}
		_ = s.Auth.LoginCaregiver(ctx, workflows.UserCredentials{Email: args[0], Password: args[1]})
	case "signup-caregiver":
		if len(args) < 9 {
			fmt.Fprintln(out, "usage: signup-caregiver <name> <email> <password> <phone> <location> <experience> <rate> <idnumber> <specialty,...>")
			return
		}
		_ = s.Auth.RegisterCaregiver(ctx, workflows.CaregiverSignup{
			Name: args[0], Email: args[1], Password: args[2], Phone: args[3],
			Location: args[4], Experience: args[5], Rate: args[6], IDNumber: args[7],
			Specialties: strings.Split(args[8], ","),
		})
	case "add-cert":
		s.Uploads.AddCertificate(strings.Join(args, " "))
	case "remove-cert":
		if idx, ok := intArg(out, args, 0, "remove-cert <index>"); ok {
			s.Uploads.RemoveCertificate(idx)
		}
	case "set-id":
		s.Uploads.SetIDDocument(strings.Join(args, " "))
	case "remove-id":
		s.Uploads.RemoveIDDocument()
	case "logout":
		s.Auth.Logout()

	case "care-type":
		s.Browse.SelectCareType(strings.Join(args, " "))
	case "browse":
		s.Nav.Navigate(nav.PageBrowseCaregivers)
	case "view":
		if id, ok := intArg(out, args, 0, "view <caregiverID>"); ok {
			_ = s.Browse.SelectCaregiver(ctx, id)
		}

	case "book-page":
		s.Booking.OpenPaymentPage()
	case "price":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: price <hours> <insured:y|n>")
			return
		}
		hours, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(out, "hours must be a number")
			return
		}
		s.Booking.UpdatePrice(hours, args[1] == "y")
	case "book":
		if len(args) < 4 {
			fmt.Fprintln(out, "usage: book <date> <time> <hours> <insured:y|n> [address...]")
			return
		}
		hours, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Fprintln(out, "hours must be a number")
			return
		}
		form := workflows.BookingForm{Date: args[0], Time: args[1], Hours: hours, Insurance: args[3] == "y"}
		if len(args) > 4 {
			form.UseCustomLocation = true
			form.CustomLocation = strings.Join(args[4:], " ")
		}
		_ = s.Booking.ConfirmBooking(ctx, form)
	case "finish":
		if id, ok := intArg(out, args, 0, "finish <bookingID>"); ok {
			_ = s.Booking.FinishJob(ctx, id)
		}
	case "fast-forward":
		if id, ok := intArg(out, args, 0, "fast-forward <bookingID>"); ok {
			s.Booking.FastForward(ctx, id)
		}
	case "rate":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: rate <bookingID> <stars> [review...]")
			return
		}
		bookingID, err1 := strconv.Atoi(args[0])
		stars, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			fmt.Fprintln(out, "bookingID and stars must be numbers")
			return
		}
		if s.Rating.OpenRating(bookingID) == nil {
			_ = s.Rating.SubmitRating(ctx, bookingID, stars, strings.Join(args[2:], " "))
		}

	case "profile":
		s.Profile.ShowUserProfile(ctx)
	case "edit-profile":
		if len(args) < 5 {
			fmt.Fprintln(out, "usage: edit-profile <name> <gender> <email> <phone> <location>")
			return
		}
		_ = s.Profile.SaveUserProfile(ctx, workflows.UserProfileEdit{
			Name: args[0], Gender: args[1], Email: args[2], Phone: args[3], Location: args[4],
		})
	case "history":
		s.Profile.LoadBookingHistory(ctx)

	case "dashboard":
		s.Nav.Navigate(nav.PageCaregiverDashboard)
	case "my-profile":
		s.Profile.ShowCaregiverProfile(ctx)
	case "accept":
		if id, ok := intArg(out, args, 0, "accept <jobID>"); ok {
			_ = s.Dashboard.AcceptJob(ctx, id)
		}
	case "complete":
		if id, ok := intArg(out, args, 0, "complete <jobID>"); ok {
			_ = s.Dashboard.CompleteJob(ctx, id)
		}
	case "job":
		if id, ok := intArg(out, args, 0, "job <jobID>"); ok {
			_ = s.Dashboard.ShowJobDetails(ctx, id)
		}

	case "training":
		if id, ok := intArg(out, args, 0, "training <trainingID>"); ok {
			_ = s.Training.ShowTrainingDetails(ctx, id)
		}
	case "enroll":
		if id, ok := intArg(out, args, 0, "enroll <trainingID>"); ok {
			_ = s.Training.Enroll(ctx, id)
		}

	case "chat":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: chat <caregiverID> <caregiverName>")
			return
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(out, "caregiverID must be a number")
			return
		}
		_ = s.Chat.OpenUserChat(ctx, id, strings.Join(args[1:], " "))
	case "chat-client":
		if len(args) < 1 {
			fmt.Fprintln(out, "usage: chat-client <clientName>")
			return
		}
		_ = s.Chat.OpenCaregiverChat(ctx, strings.Join(args, " "))
	case "say":
		_ = s.Chat.Send(ctx, strings.Join(args, " "))
	case "close-chat":
		s.Chat.Close()

	default:
		fmt.Fprintf(out, "unknown command %q, try \"help\"\n", cmd)
	}
}

func intArg(out io.Writer, args []string, index int, usage string) (int, bool) {
	if len(args) <= index {
		fmt.Fprintln(out, "usage: "+usage)
		return 0, false
	}
	n, err := strconv.Atoi(args[index])
	if err != nil {
		fmt.Fprintln(out, "usage: "+usage)
		return 0, false
	}
	return n, true
}

const usage = `commands:
  login-user, signup-user, login-caregiver, signup-caregiver
  add-cert, remove-cert, set-id, remove-id, logout
  care-type, browse, view, book-page, price, book, finish, fast-forward, rate
  profile, edit-profile, history
  dashboard, my-profile, accept, complete, job, training, enroll
  chat, chat-client, say, close-chat
  help, quit
`
