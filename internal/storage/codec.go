package storage

import (
	"encoding/json"
	"errors"

	"infoflow/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// NewVersionedRecord stamps a record with the current schema and codec
// versions; decoders reject anything else.
func NewVersionedRecord() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}

func EncodePreset(p model.Preset) ([]byte, error) {
	return json.Marshal(p)
}

func DecodePreset(data []byte) (model.Preset, error) {
	var preset model.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.Preset{}, err
	}
	if err := checkVersion(preset.VersionedRecord); err != nil {
		return model.Preset{}, err
	}
	return preset, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
