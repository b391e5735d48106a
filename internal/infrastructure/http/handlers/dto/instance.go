package dto

import (
	"time"

	"splitwise-platform/internal/domain/models"
)

type LeaseInfo struct {
	DurationInSecs        int64 `json:"durationInSecs"`
	RegistrationTimestamp int64 `json:"registrationTimestamp,omitempty"`
	LastRenewalTimestamp  int64 `json:"lastRenewalTimestamp,omitempty"`
}

type InstanceInfo struct {
	InstanceID  string            `json:"instanceId"`
	App         string            `json:"app"`
	HostName    string            `json:"hostName" validate:"required_without=IPAddr"`
	IPAddr      string            `json:"ipAddr"`
	Port        int               `json:"port" validate:"required,min=1,max=65535"`
	Status      string            `json:"status,omitempty"`
	HomePageURL string            `json:"homePageUrl,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	LeaseInfo   *LeaseInfo        `json:"leaseInfo,omitempty"`
}

// InstanceEnvelope is the register request body: {"instance": {...}}.
type InstanceEnvelope struct {
	Instance InstanceInfo `json:"instance"`
}

type ApplicationInfo struct {
	Name      string         `json:"name"`
	Instances []InstanceInfo `json:"instance"`
}

type ApplicationEnvelope struct {
	Application ApplicationInfo `json:"application"`
}

type Applications struct {
	Applications []ApplicationInfo `json:"application"`
}

type ApplicationsEnvelope struct {
	Applications Applications `json:"applications"`
}

func ToInstanceInfo(i *models.Instance) InstanceInfo {
	return InstanceInfo{
		InstanceID:  i.InstanceID,
		App:         i.App,
		HostName:    i.HostName,
		IPAddr:      i.IPAddr,
		Port:        i.Port,
		Status:      string(i.Status),
		HomePageURL: i.BaseURL() + "/",
		Metadata:    i.Metadata,
		LeaseInfo: &LeaseInfo{
			DurationInSecs:        int64(i.LeaseDuration / time.Second),
			RegistrationTimestamp: i.RegisteredAt.UnixMilli(),
			LastRenewalTimestamp:  i.LastRenewedAt.UnixMilli(),
		},
	}
}

// ToModel converts a client payload; app comes from the request path.
func (in InstanceInfo) ToModel(app string) *models.Instance {
	inst := &models.Instance{
		InstanceID: in.InstanceID,
		App:        app,
		HostName:   in.HostName,
		IPAddr:     in.IPAddr,
		Port:       in.Port,
		Status:     models.InstanceStatus(in.Status),
		Metadata:   in.Metadata,
	}
	if in.LeaseInfo != nil && in.LeaseInfo.DurationInSecs > 0 {
		inst.LeaseDuration = time.Duration(in.LeaseInfo.DurationInSecs) * time.Second
	}
	return inst
}

// FromInstanceInfo rebuilds the domain view of a registry payload on the client side.
func FromInstanceInfo(in InstanceInfo) *models.Instance {
	inst := in.ToModel(models.NormalizeAppName(in.App))
	if in.LeaseInfo != nil {
		if in.LeaseInfo.RegistrationTimestamp > 0 {
			inst.RegisteredAt = time.UnixMilli(in.LeaseInfo.RegistrationTimestamp)
		}
		if in.LeaseInfo.LastRenewalTimestamp > 0 {
			inst.LastRenewedAt = time.UnixMilli(in.LeaseInfo.LastRenewalTimestamp)
		}
	}
	return inst
}

func ToApplicationInfo(a *models.Application) ApplicationInfo {
	res := ApplicationInfo{Name: a.Name, Instances: make([]InstanceInfo, 0, len(a.Instances))}
	for _, i := range a.Instances {
		res.Instances = append(res.Instances, ToInstanceInfo(i))
	}
	return res
}

func ToApplicationsEnvelope(apps []*models.Application) ApplicationsEnvelope {
	list := make([]ApplicationInfo, 0, len(apps))
	for _, a := range apps {
		list = append(list, ToApplicationInfo(a))
	}
	return ApplicationsEnvelope{Applications: Applications{Applications: list}}
}
