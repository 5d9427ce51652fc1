package logging

import "time"

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field in milliseconds
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.Milliseconds()}
}

// Error creates an error field
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Any creates a field with any value
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component creates a component field for identifying subsystems
func Component(name string) Field {
	return Field{Key: "component", Value: name}
}

// Operation creates an operation field
func Operation(name string) Field {
	return Field{Key: "operation", Value: name}
}

// Latency creates a latency field
func Latency(d time.Duration) Field {
	return Duration("latency_ms", d)
}

// Vertex creates a vertex id field
func Vertex(id int) Field {
	return Field{Key: "vertex", Value: id}
}

// CommunityID creates a community id field
func CommunityID(id int) Field {
	return Field{Key: "community_id", Value: id}
}

// RunID creates a pipeline run id field
func RunID(id string) Field {
	return Field{Key: "run_id", Value: id}
}
