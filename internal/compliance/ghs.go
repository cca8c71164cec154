package compliance

// Statement is a GHS hazard or precautionary statement.
type Statement struct {
	Code        string
	Description string

	// Group is the hazard class for H-codes and the statement type for P-codes.
	Group string
}

// Pictogram is a GHS hazard pictogram.
type Pictogram struct {
	ID   string
	Name string
}

// Signal words, weakest first.
const (
	SignalWarning = "Warning"
	SignalDanger  = "Danger"
)

var signalWords = []string{SignalWarning, SignalDanger}

var classifications = []string{"Irritant", "Oxidizing", "Flammable", "Environmentally Damaging", "Corrosive", "Toxic", "Health Hazard", "Compressed Gas", "Explosive"}

var pictograms = []Pictogram{
	{"explosive", "Explosive"},
	{"flammable", "Flammable"},
	{"oxidizing", "Oxidizing"},
	{"compressed_gas", "Compressed Gas"},
	{"corrosive", "Corrosive"},
	{"toxic", "Toxic"},
	{"irritant", "Irritant"},
	{"health_hazard", "Health Hazard"},
	{"environmental", "Environmentally Damaging"},
}

var hazardStatements = []Statement{
	{"H200", "Unstable explosives", "Explosive"},
	{"H201", "Explosive; mass explosion hazard", "Explosive"},
	{"H202", "Explosive, severe projection hazard", "Explosive"},
	{"H203", "Explosive; fire, blast or projection hazard", "Explosive"},
	{"H204", "Fire or projection hazard", "Explosive"},
	{"H205", "May mass explode in fire", "Explosive"},
	{"H220", "Extremely flammable gas", "Flammable"},
	{"H221", "Flammable gas", "Flammable"},
	{"H222", "Extremely flammable aerosol", "Flammable"},
	{"H223", "Flammable aerosol", "Flammable"},
	{"H224", "Extremely flammable liquid and vapour", "Flammable"},
	{"H225", "Highly flammable liquid and vapour", "Flammable"},
	{"H226", "Flammable liquid and vapour", "Flammable"},
	{"H228", "Flammable solid", "Flammable"},
	{"H229", "Pressurised container: May burst if heated", "Flammable"},
	{"H240", "Heating may cause an explosion", "Flammable"},
	{"H241", "Heating may cause a fire or explosion", "Flammable"},
	{"H242", "Heating may cause a fire", "Flammable"},
	{"H250", "Catches fire spontaneously if exposed to air", "Flammable"},
	{"H251", "Self-heating: may catch fire", "Flammable"},
	{"H252", "Self-heating in large quantities; may catch fire", "Flammable"},
	{"H260", "In contact with water releases flammable gases which may ignite spontaneously", "Flammable"},
	{"H261", "In contact with water releases flammable gases", "Flammable"},
	{"H270", "May cause or intensify fire; oxidiser", "Oxidizing"},
	{"H271", "May cause fire or explosion; strong oxidiser", "Oxidizing"},
	{"H272", "May intensify fire; oxidiser", "Oxidizing"},
	{"H280", "Contains gas under pressure; may explode if heated", "Compressed Gas"},
	{"H281", "Contains refrigerated gas; may cause cryogenic burns or injury", "Compressed Gas"},
	{"H290", "May be corrosive to metals", "Corrosive"},
	{"H300", "Fatal if swallowed", "Toxic"},
	{"H301", "Toxic if swallowed", "Toxic"},
	{"H302", "Harmful if swallowed", "Irritant"},
	{"H304", "May be fatal if swallowed and enters airways", "Health Hazard"},
	{"H310", "Fatal in contact with skin", "Toxic"},
	{"H311", "Toxic in contact with skin", "Toxic"},
	{"H312", "Harmful in contact with skin", "Irritant"},
	{"H314", "Causes severe skin burns and eye damage", "Corrosive"},
	{"H315", "Causes skin irritation", "Irritant"},
	{"H317", "May cause an allergic skin reaction", "Irritant"},
	{"H318", "Causes serious eye damage", "Corrosive"},
	{"H319", "Causes serious eye irritation", "Irritant"},
	{"H330", "Fatal if inhaled", "Toxic"},
	{"H331", "Toxic if inhaled", "Toxic"},
	{"H332", "Harmful if inhaled", "Irritant"},
	{"H334", "May cause allergy or asthma symptoms or breathing difficulties if inhaled", "Health Hazard"},
	{"H335", "May cause respiratory irritation", "Irritant"},
	{"H336", "May cause drowsiness or dizziness", "Irritant"},
	{"H340", "May cause genetic defects", "Health Hazard"},
	{"H341", "Suspected of causing genetic defects", "Health Hazard"},
	{"H350", "May cause cancer", "Health Hazard"},
	{"H351", "Suspected of causing cancer", "Health Hazard"},
	{"H360", "May damage fertility or the unborn child", "Health Hazard"},
	{"H361", "Suspected of damaging fertility or the unborn child", "Health Hazard"},
	{"H362", "May cause harm to breast-fed children", "Health Hazard"},
	{"H370", "Causes damage to organs", "Health Hazard"},
	{"H371", "May cause damage to organs", "Health Hazard"},
	{"H372", "Causes damage to organs through prolonged or repeated exposure", "Health Hazard"},
	{"H373", "May cause damage to organs through prolonged or repeated exposure", "Health Hazard"},
	{"H400", "Very toxic to aquatic life", "Environmentally Damaging"},
	{"H410", "Very toxic to aquatic life with long lasting effects", "Environmentally Damaging"},
	{"H411", "Toxic to aquatic life with long lasting effects", "Environmentally Damaging"},
	{"H412", "Harmful to aquatic life with long lasting effects", "Environmentally Damaging"},
	{"H413", "May cause long lasting harmful effects to aquatic life", "Environmentally Damaging"},
	{"H420", "Harms public health and the environment by destroying ozone in the upper atmosphere", "Environmentally Damaging"},
	{"H300+H310", "Fatal if swallowed or in contact with skin", "Toxic"},
	{"H300+H330", "Fatal if swallowed or if inhaled", "Toxic"},
	{"H310+H330", "Fatal in contact with skin or if inhaled", "Toxic"},
	{"H301+H311", "Toxic if swallowed or in contact with skin", "Toxic"},
	{"H302+H312", "Harmful if swallowed or in contact with skin", "Irritant"},
	{"H302+H332", "Harmful if swallowed or if inhaled", "Irritant"},
}

var precautionaryStatements = []Statement{
	{"P101", "If medical advice is needed, have product container or label at hand", "General"},
	{"P102", "Keep out of reach of children", "General"},
	{"P103", "Read label before use", "General"},
	{"P201", "Obtain special instructions before use", "Prevention"},
	{"P202", "Do not handle until all safety precautions have been read and understood", "Prevention"},
	{"P210", "Keep away from heat, hot surface, sparks, open flames and other ignition sources - No smoking", "Prevention"},
	{"P211", "Do not spray on an open flame or other ignition source", "Prevention"},
	{"P220", "Keep away from clothing and other combustible materials", "Prevention"},
	{"P221", "Take any precaution to avoid mixing with combustibles", "Prevention"},
	{"P222", "Do not allow contact with air", "Prevention"},
	{"P223", "Do not allow contact with water", "Prevention"},
	{"P230", "Keep wetted with...", "Prevention"},
	{"P231", "Handle under inert gas", "Prevention"},
	{"P232", "Protect from moisture", "Prevention"},
	{"P233", "Keep container tightly closed", "Prevention"},
	{"P234", "Keep only in original container", "Prevention"},
	{"P235", "Keep cool", "Prevention"},
	{"P240", "Ground/bond container and receiving equipment", "Prevention"},
	{"P241", "Use explosion-proof electrical/ventilating/lighting equipment", "Prevention"},
	{"P242", "Use only non-sparking tools", "Prevention"},
	{"P243", "Take precautionary measures against static discharge", "Prevention"},
	{"P250", "Do not subject to grinding/shock/friction", "Prevention"},
	{"P251", "Do not pierce or burn, even after use", "Prevention"},
	{"P260", "Do not breathe dust/fume/gas/mist/vapors/spray", "Prevention"},
	{"P261", "Avoid breathing dust/fume/gas/mist/vapors/spray", "Prevention"},
	{"P262", "Do not get in eyes, on skin, or on clothing", "Prevention"},
	{"P263", "Avoid contact during pregnancy/while nursing", "Prevention"},
	{"P264", "Wash ... thoroughly after handling", "Prevention"},
	{"P270", "Do not eat, drink or smoke when using this product", "Prevention"},
	{"P271", "Use only outdoors or in a well-ventilated area", "Prevention"},
	{"P272", "Contaminated work clothing should not be allowed out of the workplace", "Prevention"},
	{"P273", "Avoid release to the environment", "Prevention"},
	{"P280", "Wear protective gloves/protective clothing/eye protection/face protection", "Prevention"},
	{"P281", "Use personal protective equipment as required", "Prevention"},
	{"P282", "Wear cold insulating gloves/face shield/eye protection", "Prevention"},
	{"P283", "Wear fire resistant or flame retardant clothing", "Prevention"},
	{"P284", "Wear respiratory protection", "Prevention"},
	{"P301", "IF SWALLOWED:", "Response"},
	{"P302", "IF ON SKIN:", "Response"},
	{"P303", "IF ON SKIN (or hair):", "Response"},
	{"P304", "IF INHALED:", "Response"},
	{"P305", "IF IN EYES:", "Response"},
	{"P306", "IF ON CLOTHING:", "Response"},
	{"P307", "IF exposed:", "Response"},
	{"P308", "IF exposed or concerned:", "Response"},
	{"P310", "Immediately call a POISON CENTER or doctor", "Response"},
	{"P311", "Call a POISON CENTER or doctor", "Response"},
	{"P312", "Call a POISON CENTER or doctor if you feel unwell", "Response"},
	{"P313", "Get medical advice/attention", "Response"},
	{"P314", "Get medical advice/attention if you feel unwell", "Response"},
	{"P315", "Get immediate medical advice/attention", "Response"},
	{"P320", "Specific treatment is urgent", "Response"},
	{"P321", "Specific treatment", "Response"},
	{"P330", "Rinse mouth", "Response"},
	{"P331", "Do NOT induce vomiting", "Response"},
	{"P332", "IF SKIN irritation occurs:", "Response"},
	{"P333", "IF SKIN irritation or rash occurs:", "Response"},
	{"P334", "Immerse in cool water or wrap in wet bandages", "Response"},
	{"P335", "Brush off loose particles from skin", "Response"},
	{"P336", "Thaw frosted parts with lukewarm water. Do not rub affected area", "Response"},
	{"P337", "IF eye irritation persists:", "Response"},
	{"P338", "Remove contact lenses, if present and easy to do. Continue rinsing", "Response"},
	{"P340", "Remove victim to fresh air and keep at rest in a position comfortable for breathing", "Response"},
	{"P341", "If breathing is difficult, remove victim to fresh air and keep at rest", "Response"},
	{"P342", "If experiencing respiratory symptoms:", "Response"},
	{"P350", "Gently wash with plenty of soap and water", "Response"},
	{"P351", "Rinse cautiously with water for several minutes", "Response"},
	{"P352", "Wash with plenty of water", "Response"},
	{"P353", "Rinse skin with water or shower", "Response"},
	{"P360", "Rinse immediately contaminated clothing and skin with plenty of water before removing clothes", "Response"},
	{"P361", "Take off immediately all contaminated clothing", "Response"},
	{"P362", "Take off contaminated clothing", "Response"},
	{"P363", "Wash contaminated clothing before reuse", "Response"},
	{"P370", "In case of fire:", "Response"},
	{"P371", "In case of major fire and large quantities:", "Response"},
	{"P372", "Explosion risk", "Response"},
	{"P373", "DO NOT fight fire when fire reaches explosives", "Response"},
	{"P374", "Fight fire with normal precautions from a reasonable distance", "Response"},
	{"P376", "Stop leak if safe to do so", "Response"},
	{"P377", "Leaking gas fire: Do not extinguish, unless leak can be stopped safely", "Response"},
	{"P378", "Use ... to extinguish", "Response"},
	{"P380", "Evacuate area", "Response"},
	{"P381", "In case of leakage, eliminate all ignition sources", "Response"},
	{"P390", "Absorb spillage to prevent material damage", "Response"},
	{"P391", "Collect spillage", "Response"},
	{"P301+P310", "IF SWALLOWED: Immediately call a POISON CENTER or doctor", "Response"},
	{"P301+P312", "IF SWALLOWED: call a POISON CENTER or doctor if you feel unwell", "Response"},
	{"P301+P330+P331", "IF SWALLOWED: Rinse mouth. Do NOT induce vomiting", "Response"},
	{"P302+P334", "IF ON SKIN: Immerse in cool water or wrap in wet bandages", "Response"},
	{"P302+P350", "IF ON SKIN: Gently wash with plenty of soap and water", "Response"},
	{"P302+P352", "IF ON SKIN: wash with plenty of water", "Response"},
	{"P303+P361+P353", "IF ON SKIN (or hair): Take off immediately all contaminated clothing. Rinse skin with water", "Response"},
	{"P304+P312", "IF INHALED: Call a POISON CENTER or doctor if you feel unwell", "Response"},
	{"P304+P340", "IF INHALED: Remove person to fresh air and keep comfortable for breathing", "Response"},
	{"P305+P351+P338", "IF IN EYES: Rinse cautiously with water for several minutes. Remove contact lenses if present", "Response"},
	{"P308+P311", "IF exposed or concerned: Call a POISON CENTER or doctor", "Response"},
	{"P308+P313", "IF exposed or concerned: Get medical advice/attention", "Response"},
	{"P332+P313", "IF SKIN irritation occurs: Get medical advice/attention", "Response"},
	{"P333+P313", "IF SKIN irritation or rash occurs: Get medical advice/attention", "Response"},
	{"P337+P313", "IF eye irritation persists: Get medical advice/attention", "Response"},
	{"P342+P311", "IF experiencing respiratory symptoms: Call a POISON CENTER or doctor", "Response"},
	{"P370+P376", "In case of fire: Stop leak if safe to do so", "Response"},
	{"P370+P378", "In case of fire: Use ... to extinguish", "Response"},
	{"P370+P380", "In case of fire: Evacuate area", "Response"},
	{"P401", "Store in accordance with...", "Storage"},
	{"P402", "Store in a dry place", "Storage"},
	{"P403", "Store in a well-ventilated place", "Storage"},
	{"P404", "Store in a closed container", "Storage"},
	{"P405", "Store locked up", "Storage"},
	{"P406", "Store in corrosive resistant container with a resistant inner liner", "Storage"},
	{"P407", "Maintain air gap between stacks or pallets", "Storage"},
	{"P410", "Protect from sunlight", "Storage"},
	{"P411", "Store at temperatures not exceeding...°C/...°F", "Storage"},
	{"P412", "Do not expose to temperatures exceeding 50°C/122°F", "Storage"},
	{"P413", "Store bulk masses greater than...kg/...lbs at temperatures not exceeding...°C/...°F", "Storage"},
	{"P420", "Store separately", "Storage"},
	{"P422", "Store contents under...", "Storage"},
	{"P402+P404", "Store in a dry place. Store in a closed container", "Storage"},
	{"P403+P233", "Store in a well-ventilated place. Keep container tightly closed", "Storage"},
	{"P403+P235", "Store in a well-ventilated place. Keep cool", "Storage"},
	{"P410+P403", "Protect from sunlight. Store in a well-ventilated place", "Storage"},
	{"P410+P412", "Protect from sunlight. Do not expose to temperatures exceeding 50°C/122°F", "Storage"},
	{"P501", "Dispose of contents/container to...", "Disposal"},
	{"P502", "Refer to manufacturer or supplier for information on recovery or recycling", "Disposal"},
}
