package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Endpoints holds the relative paths of every remote API resource.
type Endpoints struct {
	UserLogin         string `mapstructure:"userlogin"`
	UserRegister      string `mapstructure:"userregister"`
	UserProfile       string `mapstructure:"userprofile"`
	Caregivers        string `mapstructure:"caregivers"`
	CaregiverLogin    string `mapstructure:"caregiverlogin"`
	CaregiverRegister string `mapstructure:"caregiverregister"`
	Bookings          string `mapstructure:"bookings"`
	UserBookings      string `mapstructure:"userbookings"`
	CaregiverBookings string `mapstructure:"caregiverbookings"`
	Reviews           string `mapstructure:"reviews"`
	CaregiverReviews  string `mapstructure:"caregiverreviews"`
	Jobs              string `mapstructure:"jobs"`
	OpenJobs          string `mapstructure:"openjobs"`
	CaregiverJobs     string `mapstructure:"caregiverjobs"`
	AcceptedJobs      string `mapstructure:"acceptedjobs"`
	Messages          string `mapstructure:"messages"`
	MessageThread     string `mapstructure:"messagethread"`
	UserThreads       string `mapstructure:"userthreads"`
	CaregiverThreads  string `mapstructure:"caregiverthreads"`
	Training          string `mapstructure:"training"`
	TrainingEnroll    string `mapstructure:"trainingenroll"`
	CaregiverTraining string `mapstructure:"caregivertraining"`
}

// Config holds all configuration values.
type Config struct {
	Env          string        `mapstructure:"ENV"`
	APIBaseURL   string        `mapstructure:"API_BASE_URL"`
	HTTPTimeout  time.Duration `mapstructure:"HTTP_TIMEOUT"`
	StateDir     string        `mapstructure:"STATE_DIR"`
	PollInterval time.Duration `mapstructure:"POLL_INTERVAL"`
	LogLevel     string        `mapstructure:"LOG_LEVEL"`

	// Demo chat auto-reply. Off means production semantics.
	DemoAutoReply      bool          `mapstructure:"DEMO_AUTO_REPLY"`
	DemoAutoReplyDelay time.Duration `mapstructure:"DEMO_AUTO_REPLY_DELAY"`

	Endpoints Endpoints `mapstructure:"ENDPOINTS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("API_BASE_URL", "https://careloop-h9grczadetc7bxcw.malaysiawest-01.azurewebsites.net")
	viper.SetDefault("HTTP_TIMEOUT", "30s")
	viper.SetDefault("STATE_DIR", ".careloop")
	viper.SetDefault("POLL_INTERVAL", "10s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DEMO_AUTO_REPLY", true)
	viper.SetDefault("DEMO_AUTO_REPLY_DELAY", "1s")

	viper.SetDefault("ENDPOINTS.USERLOGIN", "/api/users/login")
	viper.SetDefault("ENDPOINTS.USERREGISTER", "/api/users/register")
	viper.SetDefault("ENDPOINTS.USERPROFILE", "/api/users")
	viper.SetDefault("ENDPOINTS.CAREGIVERS", "/api/caregivers")
	viper.SetDefault("ENDPOINTS.CAREGIVERLOGIN", "/api/caregivers/login")
	viper.SetDefault("ENDPOINTS.CAREGIVERREGISTER", "/api/caregivers/register")
	viper.SetDefault("ENDPOINTS.BOOKINGS", "/api/bookings")
	viper.SetDefault("ENDPOINTS.USERBOOKINGS", "/api/bookings/user")
	viper.SetDefault("ENDPOINTS.CAREGIVERBOOKINGS", "/api/bookings/caregiver")
	viper.SetDefault("ENDPOINTS.REVIEWS", "/api/reviews")
	viper.SetDefault("ENDPOINTS.CAREGIVERREVIEWS", "/api/reviews/caregiver")
	viper.SetDefault("ENDPOINTS.JOBS", "/api/jobs")
	viper.SetDefault("ENDPOINTS.OPENJOBS", "/api/jobs/open")
	viper.SetDefault("ENDPOINTS.CAREGIVERJOBS", "/api/jobs/for-caregiver")
	viper.SetDefault("ENDPOINTS.ACCEPTEDJOBS", "/api/jobs/accepted")
	viper.SetDefault("ENDPOINTS.MESSAGES", "/api/messages")
	viper.SetDefault("ENDPOINTS.MESSAGETHREAD", "/api/messages/thread")
	viper.SetDefault("ENDPOINTS.USERTHREADS", "/api/messages/threads/user")
	viper.SetDefault("ENDPOINTS.CAREGIVERTHREADS", "/api/messages/threads/caregiver")
	viper.SetDefault("ENDPOINTS.TRAINING", "/api/training")
	viper.SetDefault("ENDPOINTS.TRAININGENROLL", "/api/training/enroll")
	viper.SetDefault("ENDPOINTS.CAREGIVERTRAINING", "/api/training/caregiver")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
