package device

//go:generate mockgen -destination=../mock/device/mock_device.go -package=mock_device . Repo,Service

// Status represents whether a stream could be opened to a device
type Status string

const (
	// StatusNotActive no stream has been opened to the device
	StatusNotActive Status = "not-active"
	// StatusActive a stream was opened to the device during this session
	StatusActive Status = "active"
)

// Device represents a host found on the network. The IP is its identity.
type Device struct {
	IP       string `gorm:"primaryKey"`
	Hostname string
	Status   Status
}

// Repo interface representing access to stored device records
type Repo interface {
	GetAllDevices() ([]*Device, error)
	GetDevicesByStatus(status Status) ([]*Device, error)
	GetDeviceByIP(ip string) (*Device, error)
	AddDevice(d *Device) (*Device, error)
	UpdateHostname(ip, hostname string) (*Device, error)
	ActivateDevice(ip string) (bool, error)
}

// Service interface for manipulating device records
type Service interface {
	AddOrUpdateDevice(ip, hostname string) (*Device, error)
	MarkActive(d *Device) (*Device, bool, error)
	GetDevice(ip string) (*Device, error)
	GetAllDevices() ([]*Device, error)
	GetActiveDevices() ([]*Device, error)
}
