package schema

// Field spec constructors. Specs stay declarative; the validator in
// fieldspec.go interprets them.

func str(name string) FieldSpec     { return FieldSpec{Name: name, Kind: KindString} }
func integer(name string) FieldSpec { return FieldSpec{Name: name, Kind: KindInt} }
func boolean(name string) FieldSpec { return FieldSpec{Name: name, Kind: KindBool} }

func enum(name string, members ...string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindEnum, Enum: members}
}

// vec is a fixed-length numeric array, e.g. a translation or quaternion.
func vec(name string, length int) FieldSpec {
	return FieldSpec{Name: name, Kind: KindArray, Length: length, Elem: &FieldSpec{Kind: KindFloat}}
}

func strList(name string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindArray, Elem: &FieldSpec{Kind: KindString}}
}

func optional(fs FieldSpec) FieldSpec {
	fs.Optional = true
	return fs
}

func nullable(fs FieldSpec) FieldSpec {
	fs.Optional = true
	fs.Nullable = true
	return fs
}

// rleMask is the COCO run-length-encoded instance mask carried by 2D
// annotations.
var rleMask = FieldSpec{
	Name: "mask",
	Kind: KindObject,
	Fields: []FieldSpec{
		{Name: "size", Kind: KindArray, Length: 2, Elem: &FieldSpec{Kind: KindInt}},
		str("counts"),
	},
}

// TableSpecs declares the field types of every annotation table, keyed in
// TableNames order. The FMT rules interpret these via TableSpec.Validate.
var TableSpecs = map[TableName]TableSpec{
	TableAttribute: {Table: TableAttribute, Fields: []FieldSpec{
		str("token"),
		str("name"),
		str("description"),
	}},
	TableCalibratedSensor: {Table: TableCalibratedSensor, Fields: []FieldSpec{
		str("token"),
		str("sensor_token"),
		vec("translation", 3),
		vec("rotation", 4),
		// 3x3 row-major matrix for cameras, empty for other modalities.
		{Name: "camera_intrinsic", Kind: KindArray, Lengths: []int{0, 3},
			Elem: &FieldSpec{Kind: KindArray, Length: 3, Elem: &FieldSpec{Kind: KindFloat}}},
		{Name: "camera_distortion", Kind: KindArray, Lengths: []int{0, 4, 5, 8},
			Elem: &FieldSpec{Kind: KindFloat}},
	}},
	TableCategory: {Table: TableCategory, Fields: []FieldSpec{
		str("token"),
		str("name"),
		str("description"),
		nullable(integer("index")),
	}},
	TableEgoPose: {Table: TableEgoPose, Fields: []FieldSpec{
		str("token"),
		vec("translation", 3),
		vec("rotation", 4),
		integer("timestamp"),
		nullable(vec("twist", 6)),
		nullable(vec("acceleration", 3)),
		nullable(vec("geocoordinate", 3)),
	}},
	TableInstance: {Table: TableInstance, Fields: []FieldSpec{
		str("token"),
		str("category_token"),
		optional(str("instance_name")),
		integer("nbr_annotations"),
		str("first_annotation_token"),
		str("last_annotation_token"),
	}},
	TableLidarseg: {Table: TableLidarseg, Fields: []FieldSpec{
		str("token"),
		str("sample_data_token"),
		str("filename"),
	}},
	TableLog: {Table: TableLog, Fields: []FieldSpec{
		str("token"),
		str("logfile"),
		str("vehicle"),
		str("data_captured"),
		str("location"),
	}},
	TableMap: {Table: TableMap, Fields: []FieldSpec{
		str("token"),
		str("category"),
		str("filename"),
		optional(strList("log_tokens")),
	}},
	TableObjectAnn: {Table: TableObjectAnn, Fields: []FieldSpec{
		str("token"),
		str("sample_data_token"),
		str("instance_token"),
		str("category_token"),
		strList("attribute_tokens"),
		vec("bbox", 4),
		rleMask,
	}},
	TableSample: {Table: TableSample, Fields: []FieldSpec{
		str("token"),
		integer("timestamp"),
		str("scene_token"),
		str("next"),
		str("prev"),
	}},
	TableSampleAnnotation: {Table: TableSampleAnnotation, Fields: []FieldSpec{
		str("token"),
		str("sample_token"),
		str("instance_token"),
		strList("attribute_tokens"),
		str("visibility_token"),
		vec("translation", 3),
		vec("size", 3),
		vec("rotation", 4),
		integer("num_lidar_pts"),
		integer("num_radar_pts"),
		str("next"),
		str("prev"),
		nullable(vec("velocity", 3)),
		nullable(vec("acceleration", 3)),
	}},
	TableSampleData: {Table: TableSampleData, Fields: []FieldSpec{
		str("token"),
		str("sample_token"),
		str("ego_pose_token"),
		str("calibrated_sensor_token"),
		str("filename"),
		enum("fileformat", "jpg", "png", "pcd", "bin", "pcd.bin"),
		integer("width"),
		integer("height"),
		integer("timestamp"),
		boolean("is_key_frame"),
		str("next"),
		str("prev"),
		optional(boolean("is_valid")),
		nullable(str("info_filename")),
	}},
	TableScene: {Table: TableScene, Fields: []FieldSpec{
		str("token"),
		str("name"),
		str("description"),
		str("log_token"),
		integer("nbr_samples"),
		str("first_sample_token"),
		str("last_sample_token"),
	}},
	TableSensor: {Table: TableSensor, Fields: []FieldSpec{
		str("token"),
		str("channel"),
		enum("modality", "lidar", "camera", "radar"),
	}},
	TableSurfaceAnn: {Table: TableSurfaceAnn, Fields: []FieldSpec{
		str("token"),
		str("sample_data_token"),
		str("category_token"),
		rleMask,
	}},
	TableVehicleState: {Table: TableVehicleState, Fields: []FieldSpec{
		str("token"),
		integer("timestamp"),
		nullable(FieldSpec{Name: "accel_pedal", Kind: KindFloat}),
		nullable(FieldSpec{Name: "brake_pedal", Kind: KindFloat}),
		nullable(FieldSpec{Name: "steer_pedal", Kind: KindFloat}),
		nullable(FieldSpec{Name: "steering_tire_angle", Kind: KindFloat}),
		nullable(FieldSpec{Name: "steering_wheel_angle", Kind: KindFloat}),
		nullable(enum("shift_state", "PARK", "REVERSE", "NEUTRAL", "HIGH", "FORWARD", "LOW", "NONE")),
		nullable(FieldSpec{Name: "indicators", Kind: KindObject, Fields: []FieldSpec{
			enum("left", "on", "off"),
			enum("right", "on", "off"),
			enum("hazard", "on", "off"),
		}}),
	}},
	TableVisibility: {Table: TableVisibility, Fields: []FieldSpec{
		str("token"),
		// The alias forms are legacy occlusion-range labels still found in
		// older datasets.
		enum("level", "full", "most", "partial", "none", "unavailable",
			"v0-40", "v40-60", "v60-80", "v80-100"),
		str("description"),
	}},
}
