package tfs

import (
	"sort"
	"strings"
)

// ParentConcepts are the section names observed across TIFF files written
// for different detectors and imaging modes of TFS/FEI instruments. The
// glossary was compiled from example images taken for each detector and
// imaging mode of an SEM Apreo; the joint set is assumed workable.
var ParentConcepts = []string{
	"Accessories",
	"Beam",
	"ColdStage",
	"CompoundLensFilter",
	"Detectors",
	"EBeam",
	"EBeamDeceleration",
	"EScan",
	"ETD",
	"EasyLift",
	"GIS",
	"HiResIllumination",
	"HotStage",
	"HotStageHVHS",
	"HotStageMEMS",
	"IRBeam",
	"Image",
	"Nav-Cam",
	"PrivateFei",
	"Scan",
	"Specimen",
	"Stage",
	"System",
	"T1",
	"T2",
	"T3",
	"User",
	"Vacuum",
}

// AllConcepts are the parent/child keys observed in the same glossary.
var AllConcepts = []string{
	"Accessories/Number",
	"Beam/Beam",
	"Beam/BeamShiftX",
	"Beam/BeamShiftY",
	"Beam/FineStageBias",
	"Beam/HV",
	"Beam/ImageMode",
	"Beam/Scan",
	"Beam/ScanRotation",
	"Beam/Spot",
	"Beam/StigmatorX",
	"Beam/StigmatorY",
	"ColdStage/ActualTemperature",
	"ColdStage/Humidity",
	"ColdStage/SampleBias",
	"ColdStage/TargetTemperature",
	"CompoundLensFilter/IsOn",
	"CompoundLensFilter/ThresholdEnergy",
	"Detectors/Mode",
	"Detectors/Name",
	"Detectors/Number",
	"EasyLift/Rotation",
	"EBeam/Acq",
	"EBeam/Aperture",
	"EBeam/ApertureDiameter",
	"EBeam/ATubeVoltage",
	"EBeam/BeamCurrent",
	"EBeam/BeamMode",
	"EBeam/BeamShiftX",
	"EBeam/BeamShiftY",
	"EBeam/ColumnType",
	"EBeam/DynamicFocusIsOn",
	"EBeam/DynamicWDIsOn",
	"EBeam/EmissionCurrent",
	"EBeam/EucWD",
	"EBeam/FinalLens",
	"EBeam/HFW",
	"EBeam/HV",
	"EBeam/ImageMode",
	"EBeam/LensMode",
	"EBeam/LensModeA",
	"EBeam/MagnificationCorrection",
	"EBeam/PreTilt",
	"EBeam/ScanRotation",
	"EBeam/SemOpticalMode",
	"EBeam/Source",
	"EBeam/SourceTiltX",
	"EBeam/SourceTiltY",
	"EBeam/StageR",
	"EBeam/StageTa",
	"EBeam/StageTb",
	"EBeam/StageX",
	"EBeam/StageY",
	"EBeam/StageZ",
	"EBeam/StigmatorX",
	"EBeam/StigmatorY",
	"EBeam/TiltCorrectionAngle",
	"EBeam/TiltCorrectionIsOn",
	"EBeam/UseCase",
	"EBeam/VFW",
	"EBeam/WD",
	"EBeam/WehneltBias",
	"EBeamDeceleration/ImmersionRatio",
	"EBeamDeceleration/LandingEnergy",
	"EBeamDeceleration/ModeOn",
	"EBeamDeceleration/StageBias",
	"EScan/Dwell",
	"EScan/FrameTime",
	"EScan/HorFieldsize",
	"EScan/InternalScan",
	"EScan/LineIntegration",
	"EScan/LineTime",
	"EScan/Mainslock",
	"EScan/PixelHeight",
	"EScan/PixelWidth",
	"EScan/Scan",
	"EScan/ScanInterlacing",
	"EScan/VerFieldsize",
	"ETD/Brightness",
	"ETD/BrightnessDB",
	"ETD/Contrast",
	"ETD/ContrastDB",
	"ETD/Grid",
	"ETD/MinimumDwellTime",
	"ETD/Mix",
	"ETD/Setting",
	"ETD/Signal",
	"GIS/Number",
	"HiResIllumination/BrightFieldIsOn",
	"HiResIllumination/BrightFieldValue",
	"HiResIllumination/DarkFieldIsOn",
	"HiResIllumination/DarkFieldValue",
	"HotStage/ActualTemperature",
	"HotStage/SampleBias",
	"HotStage/ShieldBias",
	"HotStage/TargetTemperature",
	"HotStageHVHS/ActualTemperature",
	"HotStageHVHS/SampleBias",
	"HotStageHVHS/ShieldBias",
	"HotStageHVHS/TargetTemperature",
	"HotStageMEMS/ActualTemperature",
	"HotStageMEMS/HeatingCurrent",
	"HotStageMEMS/HeatingPower",
	"HotStageMEMS/HeatingVoltage",
	"HotStageMEMS/SampleBias",
	"HotStageMEMS/SampleResistance",
	"HotStageMEMS/TargetTemperature",
	"Image/Average",
	"Image/DigitalBrightness",
	"Image/DigitalContrast",
	"Image/DigitalGamma",
	"Image/DriftCorrected",
	"Image/Integrate",
	"Image/MagCanvasRealWidth",
	"Image/MagnificationMode",
	"Image/PostProcessing",
	"Image/ResolutionX",
	"Image/ResolutionY",
	"Image/ScreenMagCanvasRealWidth",
	"Image/ScreenMagnificationMode",
	"Image/Transformation",
	"Image/ZoomFactor",
	"Image/ZoomPanX",
	"Image/ZoomPanY",
	"IRBeam/HFW",
	"IRBeam/n",
	"IRBeam/ScanRotation",
	"IRBeam/SiDepth",
	"IRBeam/StageR",
	"IRBeam/StageTa",
	"IRBeam/StageTb",
	"IRBeam/StageX",
	"IRBeam/StageY",
	"IRBeam/StageZ",
	"IRBeam/VFW",
	"IRBeam/WD",
	"PrivateFei/BitShift",
	"PrivateFei/DataBarAvailable",
	"PrivateFei/DatabarHeight",
	"PrivateFei/DataBarSelected",
	"PrivateFei/TimeOfCreation",
	"Scan/Average",
	"Scan/Dwelltime",
	"Scan/FrameTime",
	"Scan/HorFieldsize",
	"Scan/Integrate",
	"Scan/InternalScan",
	"Scan/PixelHeight",
	"Scan/PixelWidth",
	"Scan/VerFieldsize",
	"Specimen/SpecimenCurrent",
	"Specimen/Temperature",
	"Stage/ActiveStage",
	"Stage/SpecTilt",
	"Stage/StageR",
	"Stage/StageT",
	"Stage/StageTb",
	"Stage/StageX",
	"Stage/StageY",
	"Stage/StageZ",
	"Stage/WorkingDistance",
	"System/Acq",
	"System/Aperture",
	"System/BuildNr",
	"System/Chamber",
	"System/Column",
	"System/DisplayHeight",
	"System/DisplayWidth",
	"System/Dnumber",
	"System/ESEM",
	"System/EucWD",
	"System/FinalLens",
	"System/Pump",
	"System/Scan",
	"System/Software",
	"System/Source",
	"System/Stage",
	"System/SystemType",
	"System/Type",
	"T1/Brightness",
	"T1/BrightnessDB",
	"T1/Contrast",
	"T1/ContrastDB",
	"T1/MinimumDwellTime",
	"T1/Setting",
	"T1/Signal",
	"T2/Brightness",
	"T2/BrightnessDB",
	"T2/Contrast",
	"T2/ContrastDB",
	"T2/MinimumDwellTime",
	"T2/Setting",
	"T2/Signal",
	"T3/Brightness",
	"T3/BrightnessDB",
	"T3/Contrast",
	"T3/ContrastDB",
	"T3/MinimumDwellTime",
	"T3/Signal",
	"User/Date",
	"User/Time",
	"User/User",
	"User/UserText",
	"User/UserTextUnicode",
	"Vacuum/ChPressure",
	"Vacuum/Gas",
	"Vacuum/Humidity",
	"Vacuum/UserMode",
}

// Children returns the sorted child names of a parent concept.
func Children(parent string) []string {
	prefix := parent + "/"

	var children []string
	for _, entry := range AllConcepts {
		if strings.Count(entry, "/") != 1 {
			continue
		}

		if child, ok := strings.CutPrefix(entry, prefix); ok {
			children = append(children, child)
		}
	}

	sort.Strings(children)

	return children
}
