package robot

import "github.com/progressrobotics/mycobot-go/pkg/protocol"

// JointName identifies a joint of the arm.
type JointName string

// Joint names in wire order (joints 1-6).
const (
	J1Base     JointName = "j1_base"
	J2Shoulder JointName = "j2_shoulder"
	J3Elbow    JointName = "j3_elbow"
	J4Wrist1   JointName = "j4_wrist1"
	J5Wrist2   JointName = "j5_wrist2"
	J6Flange   JointName = "j6_flange"
)

// AllJoints returns all joint names in order (matching wire joints 1-6).
func AllJoints() []JointName {
	return []JointName{
		J1Base,
		J2Shoulder,
		J3Elbow,
		J4Wrist1,
		J5Wrist2,
		J6Flange,
	}
}

// Axes returns the Cartesian axis labels in wire order.
func Axes() []string {
	return []string{"x", "y", "z", "rx", "ry", "rz"}
}

// NamedAngles pairs a 6-pack of joint angles with joint names.
func NamedAngles(angles [protocol.Joints]float64) map[JointName]float64 {
	out := make(map[JointName]float64, protocol.Joints)
	for i, name := range AllJoints() {
		out[name] = angles[i]
	}
	return out
}
