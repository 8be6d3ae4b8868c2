// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package caps answers whether a camera supports the features an ITS test
// needs, based on the camera's static characteristics.
//
// Every predicate is a pure function of its props.Properties argument. A key
// that the camera does not report always makes the predicate false.
package caps

import (
	"fmt"

	"go.chromium.org/itscaps/objects"
	"go.chromium.org/itscaps/props"
)

// Characteristics keys read by the predicates.
const (
	HardwareLevelKey   = "android.info.supportedHardwareLevel"
	CapabilitiesKey    = "android.request.availableCapabilities"
	TimestampSourceKey = "android.sensor.info.timestampSource"
	CroppingTypeKey    = "android.scaler.croppingType"
	FlashAvailableKey  = "android.flash.info.available"
)

// HardwareLevel is the value of android.info.supportedHardwareLevel.
type HardwareLevel int64

// Hardware levels. The numbering is fixed by the camera HAL and is not ordered
// by capability: LEGACY < LIMITED < FULL.
const (
	HardwareLevelLimited HardwareLevel = 0
	HardwareLevelFull    HardwareLevel = 1
	HardwareLevelLegacy  HardwareLevel = 2
)

func (l HardwareLevel) String() string {
	switch l {
	case HardwareLevelLimited:
		return "LIMITED"
	case HardwareLevelFull:
		return "FULL"
	case HardwareLevelLegacy:
		return "LEGACY"
	default:
		return fmt.Sprintf("HardwareLevel(%d)", int64(l))
	}
}

// Capability is an entry of android.request.availableCapabilities.
type Capability int64

// Capabilities consulted by the predicates.
const (
	CapabilityManualSensor         Capability = 1
	CapabilityManualPostProcessing Capability = 2
	CapabilityRaw                  Capability = 3
)

func (c Capability) String() string {
	switch c {
	case CapabilityManualSensor:
		return "MANUAL_SENSOR"
	case CapabilityManualPostProcessing:
		return "MANUAL_POST_PROCESSING"
	case CapabilityRaw:
		return "RAW"
	default:
		return fmt.Sprintf("Capability(%d)", int64(c))
	}
}

// outputSizes enumerates output sizes for Raw16 and Raw10.
// It is replaced in unit tests.
var outputSizes = objects.AvailableOutputSizes

func hasLevel(p props.Properties, l HardwareLevel) bool {
	return p.HasInt(HardwareLevelKey, int64(l))
}

func hasCapability(p props.Properties, c Capability) bool {
	return p.ContainsInt(CapabilitiesKey, int64(c))
}

// Full reports whether the camera is a FULL hardware level device.
func Full(p props.Properties) bool {
	return hasLevel(p, HardwareLevelFull)
}

// Limited reports whether the camera is a LIMITED hardware level device.
func Limited(p props.Properties) bool {
	return hasLevel(p, HardwareLevelLimited)
}

// Legacy reports whether the camera is a LEGACY hardware level device.
func Legacy(p props.Properties) bool {
	return hasLevel(p, HardwareLevelLegacy)
}

// ManualSensor reports whether the camera supports MANUAL_SENSOR controls.
// FULL devices always do, whether or not they list the capability.
func ManualSensor(p props.Properties) bool {
	return hasCapability(p, CapabilityManualSensor) || Full(p)
}

// ManualPostProc reports whether the camera supports MANUAL_POST_PROCESSING
// controls. FULL devices always do.
func ManualPostProc(p props.Properties) bool {
	return hasCapability(p, CapabilityManualPostProcessing) || Full(p)
}

// Raw reports whether the camera lists the RAW capability. Unlike
// ManualSensor, a FULL hardware level does not imply it.
func Raw(p props.Properties) bool {
	return hasCapability(p, CapabilityRaw)
}

// Raw16 reports whether the camera has at least one RAW16 output size.
func Raw16(p props.Properties) bool {
	return len(outputSizes(objects.FormatRaw, p)) > 0
}

// Raw10 reports whether the camera has at least one RAW10 output size.
func Raw10(p props.Properties) bool {
	return len(outputSizes(objects.FormatRaw10, p)) > 0
}

// SensorFusion reports whether camera and motion sensor timestamps share a
// time base and can be compared directly.
func SensorFusion(p props.Properties) bool {
	return p.HasInt(TimestampSourceKey, 1)
}

// Read3A reports whether the camera can read out the 3A results:
// sensitivity, exposure time, AWB gains, AWB transform and focus distance.
func Read3A(p props.Properties) bool {
	// TODO: check the available result keys explicitly instead of inferring
	// from the manual control capabilities.
	return ManualSensor(p) && ManualPostProc(p)
}

// ComputeTargetExposure reports whether the camera supports computing a
// target exposure for ITS scenes. It uses the same rule as Read3A.
func ComputeTargetExposure(p props.Properties) bool {
	return ManualSensor(p) && ManualPostProc(p)
}

// FreeformCrop reports whether the camera supports freeform cropping.
func FreeformCrop(p props.Properties) bool {
	return p.HasInt(CroppingTypeKey, 1)
}

// Flash reports whether the camera has a flash unit it can control.
func Flash(p props.Properties) bool {
	return p.HasInt(FlashAvailableKey, 1)
}
