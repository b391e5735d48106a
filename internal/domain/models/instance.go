package models

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

type InstanceStatus string

const (
	StatusUp           InstanceStatus = "UP"
	StatusDown         InstanceStatus = "DOWN"
	StatusStarting     InstanceStatus = "STARTING"
	StatusOutOfService InstanceStatus = "OUT_OF_SERVICE"
	StatusUnknown      InstanceStatus = "UNKNOWN"
)

func (s InstanceStatus) Valid() bool {
	switch s {
	case StatusUp, StatusDown, StatusStarting, StatusOutOfService, StatusUnknown:
		return true
	}
	return false
}

type Instance struct {
	InstanceID    string
	App           string
	HostName      string
	IPAddr        string
	Port          int
	Status        InstanceStatus
	Metadata      map[string]string
	LeaseDuration time.Duration
	RegisteredAt  time.Time
	LastRenewedAt time.Time
}

// NormalizeAppName returns the canonical (upper case) application name.
func NormalizeAppName(app string) string {
	return strings.ToUpper(strings.TrimSpace(app))
}

func (i *Instance) BaseURL() string {
	host := i.IPAddr
	if host == "" {
		host = i.HostName
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, strconv.Itoa(i.Port)))
}

func (i *Instance) ExpiresAt() time.Time {
	return i.LastRenewedAt.Add(i.LeaseDuration)
}

func (i *Instance) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt())
}

func (i *Instance) Clone() *Instance {
	c := *i
	if i.Metadata != nil {
		c.Metadata = make(map[string]string, len(i.Metadata))
		for k, v := range i.Metadata {
			c.Metadata[k] = v
		}
	}
	return &c
}

type Application struct {
	Name      string
	Instances []*Instance
}

// UpInstances returns the instances currently reporting UP.
func (a *Application) UpInstances() []*Instance {
	out := make([]*Instance, 0, len(a.Instances))
	for _, inst := range a.Instances {
		if inst.Status == StatusUp {
			out = append(out, inst)
		}
	}
	return out
}
