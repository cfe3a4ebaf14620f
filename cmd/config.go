package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	OrderServiceURL    string
	DeliveryServiceURL string

	// DriverID switches the process into the driver role: the location push
	// job starts and DriverLocation feeds its sampler. Empty means customer
	// role, no push job.
	DriverID       string
	DriverLocation string

	// TrackOrderID starts the background snapshot poller for one order.
	// Empty means on-demand tracking only.
	TrackOrderID string
}
