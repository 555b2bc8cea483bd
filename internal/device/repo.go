package device

import (
	"errors"

	"github.com/robgonnella/sockchat/internal/exception"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new device sqlite repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// GetAllDevices returns all devices from the database
func (r *SqliteRepo) GetAllDevices() ([]*Device, error) {
	devices := []*Device{}

	if result := r.db.Order("ip").Find(&devices); result.Error != nil {
		return nil, result.Error
	}

	return devices, nil
}

// GetDevicesByStatus returns all devices with the given status
func (r *SqliteRepo) GetDevicesByStatus(status Status) ([]*Device, error) {
	devices := []*Device{}

	result := r.db.Where("status = ?", status).Order("ip").Find(&devices)

	if result.Error != nil {
		return nil, result.Error
	}

	return devices, nil
}

// GetDeviceByIP returns a device from the database
func (r *SqliteRepo) GetDeviceByIP(ip string) (*Device, error) {
	device := Device{}

	if result := r.db.Where("ip = ?", ip).First(&device); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &device, nil
}

// AddDevice inserts a device. Adding an ip that already exists leaves the
// stored record untouched.
func (r *SqliteRepo) AddDevice(device *Device) (*Device, error) {
	if device.IP == "" {
		return nil, errors.New("device ip cannot be empty")
	}

	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(device)

	if result.Error != nil {
		return nil, result.Error
	}

	return device, nil
}

// UpdateHostname sets the hostname of an existing device without touching
// its status
func (r *SqliteRepo) UpdateHostname(ip, hostname string) (*Device, error) {
	if ip == "" {
		return nil, errors.New("device ip cannot be empty")
	}

	result := r.db.Model(&Device{}).Where("ip = ?", ip).Update("hostname", hostname)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, exception.ErrRecordNotFound
	}

	return r.GetDeviceByIP(ip)
}

// ActivateDevice flips a device from not-active to active. Returns true only
// for the call that performed the transition.
func (r *SqliteRepo) ActivateDevice(ip string) (bool, error) {
	result := r.db.Model(&Device{}).
		Where("ip = ? AND status = ?", ip, StatusNotActive).
		Update("status", StatusActive)

	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 1 {
		return true, nil
	}

	if _, err := r.GetDeviceByIP(ip); err != nil {
		return false, err
	}

	return false, nil
}
