package scale

// templateTokensDark holds the 12 P3 tokens per scale name for dark
// appearance (near-black step 1 through saturated mid steps to light
// step 12).

var templateTokensDark = map[string][12]string{
	"tomato": {
		"color(display-p3 0.160 0.151 0.150)",
		"color(display-p3 0.196 0.177 0.174)",
		"color(display-p3 0.253 0.205 0.197)",
		"color(display-p3 0.324 0.231 0.216)",
		"color(display-p3 0.424 0.261 0.236)",
		"color(display-p3 0.549 0.291 0.251)",
		"color(display-p3 0.703 0.316 0.257)",
		"color(display-p3 0.814 0.408 0.346)",
		"color(display-p3 0.878 0.535 0.482)",
		"color(display-p3 0.903 0.681 0.647)",
		"color(display-p3 0.929 0.809 0.791)",
		"color(display-p3 0.965 0.921 0.915)",
	},
	"orange": {
		"color(display-p3 0.160 0.155 0.150)",
		"color(display-p3 0.197 0.186 0.173)",
		"color(display-p3 0.254 0.227 0.196)",
		"color(display-p3 0.326 0.274 0.214)",
		"color(display-p3 0.429 0.337 0.231)",
		"color(display-p3 0.556 0.410 0.244)",
		"color(display-p3 0.714 0.496 0.246)",
		"color(display-p3 0.826 0.596 0.334)",
		"color(display-p3 0.888 0.694 0.472)",
		"color(display-p3 0.910 0.784 0.640)",
		"color(display-p3 0.933 0.865 0.787)",
		"color(display-p3 0.967 0.942 0.913)",
	},
	"amber": {
		"color(display-p3 0.160 0.158 0.150)",
		"color(display-p3 0.196 0.193 0.174)",
		"color(display-p3 0.252 0.245 0.198)",
		"color(display-p3 0.322 0.308 0.218)",
		"color(display-p3 0.421 0.397 0.239)",
		"color(display-p3 0.544 0.506 0.256)",
		"color(display-p3 0.696 0.638 0.264)",
		"color(display-p3 0.807 0.746 0.353)",
		"color(display-p3 0.872 0.821 0.488)",
		"color(display-p3 0.899 0.866 0.651)",
		"color(display-p3 0.927 0.909 0.793)",
		"color(display-p3 0.964 0.958 0.916)",
	},
	"grass": {
		"color(display-p3 0.152 0.158 0.152)",
		"color(display-p3 0.177 0.193 0.179)",
		"color(display-p3 0.205 0.245 0.210)",
		"color(display-p3 0.231 0.309 0.241)",
		"color(display-p3 0.262 0.398 0.280)",
		"color(display-p3 0.292 0.508 0.321)",
		"color(display-p3 0.318 0.642 0.361)",
		"color(display-p3 0.410 0.750 0.455)",
		"color(display-p3 0.536 0.824 0.574)",
		"color(display-p3 0.682 0.868 0.707)",
		"color(display-p3 0.810 0.910 0.823)",
		"color(display-p3 0.922 0.958 0.927)",
	},
	"teal": {
		"color(display-p3 0.152 0.158 0.158)",
		"color(display-p3 0.177 0.193 0.191)",
		"color(display-p3 0.205 0.245 0.240)",
		"color(display-p3 0.231 0.309 0.299)",
		"color(display-p3 0.262 0.398 0.380)",
		"color(display-p3 0.292 0.508 0.479)",
		"color(display-p3 0.318 0.642 0.599)",
		"color(display-p3 0.410 0.750 0.705)",
		"color(display-p3 0.536 0.824 0.786)",
		"color(display-p3 0.682 0.868 0.843)",
		"color(display-p3 0.810 0.910 0.897)",
		"color(display-p3 0.922 0.958 0.953)",
	},
	"blue": {
		"color(display-p3 0.150 0.154 0.160)",
		"color(display-p3 0.173 0.183 0.197)",
		"color(display-p3 0.196 0.221 0.254)",
		"color(display-p3 0.214 0.263 0.326)",
		"color(display-p3 0.231 0.317 0.429)",
		"color(display-p3 0.244 0.379 0.556)",
		"color(display-p3 0.246 0.449 0.714)",
		"color(display-p3 0.334 0.547 0.826)",
		"color(display-p3 0.472 0.652 0.888)",
		"color(display-p3 0.640 0.757 0.910)",
		"color(display-p3 0.787 0.850 0.933)",
		"color(display-p3 0.913 0.936 0.967)",
	},
	"indigo": {
		"color(display-p3 0.151 0.151 0.159)",
		"color(display-p3 0.175 0.175 0.195)",
		"color(display-p3 0.200 0.200 0.250)",
		"color(display-p3 0.222 0.222 0.318)",
		"color(display-p3 0.247 0.247 0.413)",
		"color(display-p3 0.268 0.268 0.532)",
		"color(display-p3 0.282 0.282 0.678)",
		"color(display-p3 0.372 0.372 0.788)",
		"color(display-p3 0.504 0.504 0.856)",
		"color(display-p3 0.661 0.661 0.889)",
		"color(display-p3 0.798 0.798 0.922)",
		"color(display-p3 0.918 0.918 0.962)",
	},
	"violet": {
		"color(display-p3 0.154 0.151 0.159)",
		"color(display-p3 0.183 0.176 0.194)",
		"color(display-p3 0.219 0.202 0.248)",
		"color(display-p3 0.258 0.227 0.313)",
		"color(display-p3 0.310 0.254 0.406)",
		"color(display-p3 0.368 0.280 0.520)",
		"color(display-p3 0.432 0.300 0.660)",
		"color(display-p3 0.530 0.391 0.769)",
		"color(display-p3 0.637 0.520 0.840)",
		"color(display-p3 0.747 0.671 0.879)",
		"color(display-p3 0.845 0.804 0.916)",
		"color(display-p3 0.935 0.920 0.960)",
	},
	"plum": {
		"color(display-p3 0.158 0.152 0.158)",
		"color(display-p3 0.192 0.177 0.193)",
		"color(display-p3 0.242 0.205 0.245)",
		"color(display-p3 0.302 0.231 0.309)",
		"color(display-p3 0.387 0.262 0.398)",
		"color(display-p3 0.490 0.292 0.508)",
		"color(display-p3 0.615 0.318 0.642)",
		"color(display-p3 0.722 0.410 0.750)",
		"color(display-p3 0.800 0.536 0.824)",
		"color(display-p3 0.853 0.682 0.868)",
		"color(display-p3 0.902 0.810 0.910)",
		"color(display-p3 0.955 0.922 0.958)",
	},
	"crimson": {
		"color(display-p3 0.159 0.151 0.154)",
		"color(display-p3 0.196 0.174 0.181)",
		"color(display-p3 0.251 0.199 0.216)",
		"color(display-p3 0.320 0.220 0.253)",
		"color(display-p3 0.418 0.242 0.301)",
		"color(display-p3 0.539 0.261 0.354)",
		"color(display-p3 0.689 0.271 0.410)",
		"color(display-p3 0.799 0.361 0.507)",
		"color(display-p3 0.866 0.494 0.618)",
		"color(display-p3 0.895 0.655 0.735)",
		"color(display-p3 0.925 0.795 0.838)",
		"color(display-p3 0.964 0.916 0.932)",
	},
	"gray": {
		"color(display-p3 0.155 0.155 0.155)",
		"color(display-p3 0.185 0.185 0.185)",
		"color(display-p3 0.225 0.225 0.225)",
		"color(display-p3 0.270 0.270 0.270)",
		"color(display-p3 0.330 0.330 0.330)",
		"color(display-p3 0.400 0.400 0.400)",
		"color(display-p3 0.480 0.480 0.480)",
		"color(display-p3 0.580 0.580 0.580)",
		"color(display-p3 0.680 0.680 0.680)",
		"color(display-p3 0.775 0.775 0.775)",
		"color(display-p3 0.860 0.860 0.860)",
		"color(display-p3 0.940 0.940 0.940)",
	},
	"mauve": {
		"color(display-p3 0.164 0.146 0.164)",
		"color(display-p3 0.196 0.174 0.196)",
		"color(display-p3 0.239 0.211 0.239)",
		"color(display-p3 0.286 0.254 0.286)",
		"color(display-p3 0.350 0.310 0.350)",
		"color(display-p3 0.424 0.376 0.424)",
		"color(display-p3 0.509 0.451 0.509)",
		"color(display-p3 0.605 0.555 0.605)",
		"color(display-p3 0.699 0.661 0.699)",
		"color(display-p3 0.788 0.762 0.788)",
		"color(display-p3 0.868 0.852 0.868)",
		"color(display-p3 0.944 0.936 0.944)",
	},
	"slate": {
		"color(display-p3 0.147 0.152 0.163)",
		"color(display-p3 0.176 0.182 0.194)",
		"color(display-p3 0.214 0.221 0.236)",
		"color(display-p3 0.257 0.266 0.284)",
		"color(display-p3 0.314 0.325 0.347)",
		"color(display-p3 0.380 0.393 0.420)",
		"color(display-p3 0.456 0.472 0.504)",
		"color(display-p3 0.559 0.573 0.601)",
		"color(display-p3 0.664 0.675 0.696)",
		"color(display-p3 0.764 0.771 0.786)",
		"color(display-p3 0.853 0.858 0.867)",
		"color(display-p3 0.937 0.939 0.943)",
	},
	"sage": {
		"color(display-p3 0.149 0.161 0.155)",
		"color(display-p3 0.178 0.192 0.185)",
		"color(display-p3 0.216 0.234 0.225)",
		"color(display-p3 0.259 0.281 0.270)",
		"color(display-p3 0.317 0.343 0.330)",
		"color(display-p3 0.384 0.416 0.400)",
		"color(display-p3 0.461 0.499 0.480)",
		"color(display-p3 0.563 0.597 0.580)",
		"color(display-p3 0.667 0.693 0.680)",
		"color(display-p3 0.766 0.784 0.775)",
		"color(display-p3 0.854 0.866 0.860)",
		"color(display-p3 0.938 0.942 0.940)",
	},
}

