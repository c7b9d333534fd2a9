// Package services implements the driving ports: the search driver
// that runs the per-resume Flatten -> Normalise -> Match pipeline, and
// the corpus service that imports and manages resumes.
package services
